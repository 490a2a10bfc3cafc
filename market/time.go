package market

import (
	"time"

	"github.com/kbukum/gdax/rest"
	"github.com/kbukum/gdax/route"
)

// GetTime requests the exchange clock.
type GetTime struct {
	rest.JSON[Time]
}

// CreateRequest returns GET /time.
func (GetTime) CreateRequest() rest.Request {
	return rest.Get(route.New().AddSegment("time"), nil)
}

// Time is the exchange clock.
type Time struct {
	ISO   time.Time `json:"iso"`
	Epoch float64   `json:"epoch"`
}

// Skew returns how far local is ahead of the exchange clock.
func (t Time) Skew(local time.Time) time.Duration {
	return local.Sub(t.ISO)
}
