// Package market holds the public market-data endpoints of the exchange and the
// types their responses decode into.
//
// Each endpoint is a small value; pass it to rest.Send:
//
//	book, err := rest.Send(ctx, c, market.GetProductOrderBook{
//	    ProductID: "BTC-USD",
//	    Level:     market.LevelTop50,
//	})
//
// Prices and sizes arrive as JSON strings and decode into wire.Float.
package market
