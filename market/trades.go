package market

import (
	"encoding/json"
	"time"

	"github.com/kbukum/gdax/errors"
	"github.com/kbukum/gdax/rest"
	"github.com/kbukum/gdax/wire"
)

// GetTrades lists a product's latest trades, newest first. Pagination selects a
// page relative to a trade id.
type GetTrades struct {
	rest.JSON[[]Trade]
	ProductID  string
	Pagination *rest.Pagination
}

// CreateRequest returns GET /products/{id}/trades with the pagination attributes.
func (g GetTrades) CreateRequest() rest.Request {
	return rest.Get(product(g.ProductID).AddSegment("trades"), g.Pagination)
}

// Side is the taker side of a trade.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// UnmarshalJSON accepts "buy" or "sell" and rejects anything else.
func (s *Side) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Decodef("side: %s is not a string", data).WithCause(err)
	}
	switch Side(raw) {
	case Buy, Sell:
		*s = Side(raw)
		return nil
	default:
		return errors.Decodef("side: unexpected value %q", raw)
	}
}

// Trade is one executed trade.
type Trade struct {
	Time    time.Time  `json:"time"`
	TradeID uint64     `json:"trade_id"`
	Price   wire.Float `json:"price"`
	Size    wire.Float `json:"size"`
	Side    Side       `json:"side"`
}
