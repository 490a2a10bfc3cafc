package history

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/kbukum/gdax/market"
)

// Sink receives trade pages in walk order.
type Sink interface {
	Write(trades []market.Trade) error
	// Flush makes everything written so far durable. A walk calls it once.
	Flush() error
}

// CSVHeader is the first row written by a CSV sink.
var CSVHeader = []string{"time", "trade_id", "price", "size", "side"}

// CSVSink writes trades as CSV rows with a header.
type CSVSink struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewCSVSink returns a sink writing CSV to w.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

func (s *CSVSink) Write(trades []market.Trade) error {
	if !s.wroteHeader {
		if err := s.w.Write(CSVHeader); err != nil {
			return err
		}
		s.wroteHeader = true
	}
	for _, t := range trades {
		row := []string{
			t.Time.UTC().Format(time.RFC3339Nano),
			strconv.FormatUint(t.TradeID, 10),
			t.Price.String(),
			t.Size.String(),
			string(t.Side),
		}
		if err := s.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes buffered rows to the underlying writer. An empty walk still
// produces the header.
func (s *CSVSink) Flush() error {
	if !s.wroteHeader {
		if err := s.w.Write(CSVHeader); err != nil {
			return err
		}
		s.wroteHeader = true
	}
	s.w.Flush()
	return s.w.Error()
}
