package exchangetest

import (
	"fmt"
	"slices"
	"time"
)

// Trade is one trade on the tape in wire form.
type Trade struct {
	Time    time.Time `json:"time"`
	TradeID uint64    `json:"trade_id"`
	Price   string    `json:"price"`
	Size    string    `json:"size"`
	Side    string    `json:"side"`
}

// TapeStart is the time of trade 1 on a generated tape.
var TapeStart = time.Date(2014, 11, 7, 0, 0, 0, 0, time.UTC)

// Tape generates trades 1 through n, one second apart, alternating sides.
func Tape(n int) []Trade {
	trades := make([]Trade, 0, n)
	for i := 1; i <= n; i++ {
		side := "buy"
		if i%2 == 0 {
			side = "sell"
		}
		trades = append(trades, Trade{
			Time:    TapeStart.Add(time.Duration(i) * time.Second),
			TradeID: uint64(i),
			Price:   fmt.Sprintf("%d.00000000", 100+i%10),
			Size:    "0.01000000",
			Side:    side,
		})
	}
	return trades
}

// tape holds trades newest first.
type tape []Trade

func newTape(trades []Trade) tape {
	t := slices.Clone(trades)
	slices.SortFunc(t, func(a, b Trade) int {
		switch {
		case a.TradeID > b.TradeID:
			return -1
		case a.TradeID < b.TradeID:
			return 1
		default:
			return 0
		}
	})
	return t
}

// after returns up to limit trades older than id, newest first.
func (t tape) after(id uint64, limit int) []Trade {
	i, _ := slices.BinarySearchFunc(t, id, func(tr Trade, id uint64) int {
		switch {
		case tr.TradeID > id:
			return -1
		case tr.TradeID < id:
			return 1
		default:
			return 0
		}
	})
	for i < len(t) && t[i].TradeID >= id {
		i++
	}
	return t[i:min(i+limit, len(t))]
}

// before returns up to limit trades newer than id, the ones nearest id, newest first.
func (t tape) before(id uint64, limit int) []Trade {
	end := 0
	for end < len(t) && t[end].TradeID > id {
		end++
	}
	return t[max(0, end-limit):end]
}

func (t tape) latest(limit int) []Trade {
	return t[:min(limit, len(t))]
}
