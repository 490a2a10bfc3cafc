package exchangetest

// Fixture bodies served by the fake exchange.
const (
	TimeJSON = `{"iso":"2015-01-07T23:47:25.201Z","epoch":1420674445.201}`

	CurrenciesJSON = `[{"id":"BTC","name":"Bitcoin","min_size":"0.00000001"},` +
		`{"id":"USD","name":"United States Dollar","min_size":"0.01000000"}]`

	TickerJSON = `{"trade_id":4729088,"price":"333.99","size":"0.193","bid":"333.98",` +
		`"ask":"333.99","volume":"5957.11914015","time":"2015-11-14T20:46:03.511254Z"}`

	StatsJSON = `{"open":"34.19000000","high":"95.70000000","low":"7.06000000",` +
		`"volume":"2.41000000","last":"90.01000000","volume_30day":"1234.56780000"}`

	BookLevel1JSON = `{"sequence":3,"bids":[["16839.45","0.47037038",2]],` +
		`"asks":[["16913.21","4.85",1]]}`

	BookLevel2JSON = `{"sequence":3,` +
		`"bids":[["16839.45","0.47037038",2],["16835.39","0.00075522",2]],` +
		`"asks":[["16913.21","4.85",1],["16918.01","0.70301839",11],["16918.02","9.88197274",24]]}`

	BookLevel3JSON = `{"sequence":3,` +
		`"bids":[["16839.45","0.47037038","3b0f1225-7f84-490b-a29f-0faef9de823a"],` +
		`["16835.39","0.00075522","3b0f1225-7f84-490b-a29f-1faef9de823a"]],` +
		`"asks":[["16913.21","4.85","da863862-25f4-4868-ac41-005d11ab0a5f"],` +
		`["16918.01","0.70301839","da863862-25f4-4868-ac41-005d11ab1a5f"],` +
		`["16918.02","9.88197274","da863862-25f4-4868-ac41-005d11ab2a5f"]]}`
)

// Product is a listed product as served by /products.
type Product struct {
	ID             string `json:"id"`
	BaseCurrency   string `json:"base_currency"`
	QuoteCurrency  string `json:"quote_currency"`
	BaseMinSize    string `json:"base_min_size"`
	BaseMaxSize    string `json:"base_max_size"`
	QuoteIncrement string `json:"quote_increment"`
}

// DefaultProducts are listed unless WithProducts replaces them.
var DefaultProducts = []Product{
	{ID: "BTC-USD", BaseCurrency: "BTC", QuoteCurrency: "USD", BaseMinSize: "0.01", BaseMaxSize: "10000.00", QuoteIncrement: "0.01"},
	{ID: "ETH-USD", BaseCurrency: "ETH", QuoteCurrency: "USD", BaseMinSize: "0.01", BaseMaxSize: "5000.00", QuoteIncrement: "0.01"},
}
