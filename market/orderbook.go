package market

import (
	"encoding/json"

	"github.com/kbukum/gdax/errors"
	"github.com/kbukum/gdax/rest"
	"github.com/kbukum/gdax/wire"
)

// Level selects the depth of an order book request.
type Level int

const (
	// LevelBest is the best bid and ask, aggregated.
	LevelBest Level = 1
	// LevelTop50 is the top 50 bids and asks, aggregated.
	LevelTop50 Level = 2
	// LevelFull is the full, non-aggregated book.
	LevelFull Level = 3
)

// String returns a readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelBest:
		return "best"
	case LevelTop50:
		return "top50"
	case LevelFull:
		return "full"
	default:
		return "unknown"
	}
}

// GetProductOrderBook requests a product's order book at the given level.
type GetProductOrderBook struct {
	rest.JSON[OrderBook[PriceLevel]]
	ProductID string
	Level     Level
}

// CreateRequest returns GET /products/{id}/book?level=N.
func (g GetProductOrderBook) CreateRequest() rest.Request {
	// The query carries the numeric level, not its name.
	r := product(g.ProductID).AddSegment("book").AddAttributeValue("level", int(g.Level))
	return rest.Get(r, nil)
}

// OrderBook is a snapshot of bids and asks at a sequence number.
type OrderBook[L any] struct {
	Sequence uint64 `json:"sequence"`
	Bids     []L    `json:"bids"`
	Asks     []L    `json:"asks"`
}

// PriceLevel is one book entry, sent as the array [price, size, order-info].
// For levels 1 and 2 the order info is an order count; for level 3 it is an order id.
type PriceLevel struct {
	Price     wire.Float
	Size      wire.Float
	OrderInfo wire.OrderInfo
}

// UnmarshalJSON decodes a positional [price, size, orders] array.
func (p *PriceLevel) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return errors.Decodef("price level: %s is not an array", data).WithCause(err)
	}
	if len(fields) != 3 {
		return errors.Decodef("price level: got %d elements, want 3", len(fields))
	}

	var level PriceLevel
	if err := json.Unmarshal(fields[0], &level.Price); err != nil {
		return err
	}
	if err := json.Unmarshal(fields[1], &level.Size); err != nil {
		return err
	}
	if err := json.Unmarshal(fields[2], &level.OrderInfo); err != nil {
		return err
	}
	*p = level
	return nil
}

// MarshalJSON encodes the level back as a positional array.
func (p PriceLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Price, p.Size, p.OrderInfo})
}
