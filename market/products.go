package market

import (
	"time"

	"github.com/kbukum/gdax/rest"
	"github.com/kbukum/gdax/route"
	"github.com/kbukum/gdax/wire"
)

func product(id string) route.Route {
	return route.New().AddSegment("products").AddSegment(id)
}

// GetProducts lists the tradable products.
type GetProducts struct {
	rest.JSON[[]Product]
}

// CreateRequest returns GET /products.
func (GetProducts) CreateRequest() rest.Request {
	return rest.Get(route.New().AddSegment("products"), nil)
}

// Product is a currency pair available for trading.
type Product struct {
	ID             string     `json:"id"`
	BaseCurrency   string     `json:"base_currency"`
	QuoteCurrency  string     `json:"quote_currency"`
	BaseMinSize    wire.Float `json:"base_min_size"`
	BaseMaxSize    wire.Float `json:"base_max_size"`
	QuoteIncrement wire.Float `json:"quote_increment"`
}

// GetProductTicker requests the last trade and best bid/ask of a product.
type GetProductTicker struct {
	rest.JSON[Ticker]
	ProductID string
}

// CreateRequest returns GET /products/{id}/ticker.
func (g GetProductTicker) CreateRequest() rest.Request {
	return rest.Get(product(g.ProductID).AddSegment("ticker"), nil)
}

// Ticker is a snapshot of the last trade, best bid and best ask.
type Ticker struct {
	TradeID uint64     `json:"trade_id"`
	Price   wire.Float `json:"price"`
	Size    wire.Float `json:"size"`
	Bid     wire.Float `json:"bid"`
	Ask     wire.Float `json:"ask"`
	Volume  wire.Float `json:"volume"`
	Time    time.Time  `json:"time"`
}

// Get24hrStats requests a product's trading stats over the last 24 hours.
type Get24hrStats struct {
	rest.JSON[Stats]
	ProductID string
}

// CreateRequest returns GET /products/{id}/stats.
func (g Get24hrStats) CreateRequest() rest.Request {
	return rest.Get(product(g.ProductID).AddSegment("stats"), nil)
}

// Stats summarises 24 hours of trading. Volume30Day covers the last 30 days.
type Stats struct {
	Open        wire.Float `json:"open"`
	High        wire.Float `json:"high"`
	Low         wire.Float `json:"low"`
	Volume      wire.Float `json:"volume"`
	Last        wire.Float `json:"last"`
	Volume30Day wire.Float `json:"volume_30day"`
}
