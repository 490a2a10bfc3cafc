package market

import (
	"github.com/kbukum/gdax/rest"
	"github.com/kbukum/gdax/route"
	"github.com/kbukum/gdax/wire"
)

// GetCurrencies lists the currencies known to the exchange.
type GetCurrencies struct {
	rest.JSON[[]Currency]
}

// CreateRequest returns GET /currencies.
func (GetCurrencies) CreateRequest() rest.Request {
	return rest.Get(route.New().AddSegment("currencies"), nil)
}

// Currency is one listed currency.
type Currency struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	MinSize wire.Float `json:"min_size"`
}
