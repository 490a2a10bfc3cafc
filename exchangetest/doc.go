// Package exchangetest provides an in-process fake of the exchange's public
// market-data API for tests.
//
// A Server serves fixed fixtures for time, currencies, products, tickers,
// stats and order books, and pages an in-memory trade tape by before, after
// and limit the way the exchange does. Faults can be queued per path.
//
//	srv := exchangetest.New(exchangetest.WithTape("BTC-USD", 250))
//	defer srv.Close()
//	client, _ := rest.New(rest.Config{BaseURL: srv.URL()})
package exchangetest
