package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/kbukum/gdax/market"
)

type tradeRecord struct {
	TimeMillis int64   `parquet:"name=time, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	TradeID    int64   `parquet:"name=trade_id, type=INT64"`
	Price      float64 `parquet:"name=price, type=DOUBLE"`
	Size       float64 `parquet:"name=size, type=DOUBLE"`
	Side       string  `parquet:"name=side, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// streamFile adapts an io.Writer to the write side of source.ParquetFile.
// The parquet writer only seeks to learn the current offset.
type streamFile struct {
	w       io.Writer
	written int64
}

func (f *streamFile) Create(string) (source.ParquetFile, error) { return f, nil }
func (f *streamFile) Open(string) (source.ParquetFile, error)   { return f, nil }
func (f *streamFile) Seek(int64, int) (int64, error)            { return f.written, nil }
func (f *streamFile) Read([]byte) (int, error)                  { return 0, fmt.Errorf("read not supported") }
func (f *streamFile) Close() error                              { return nil }

func (f *streamFile) Write(b []byte) (int, error) {
	n, err := f.w.Write(b)
	f.written += int64(n)
	return n, err
}

// ParquetSink writes trades as a parquet file. Flush writes the footer, after
// which the sink accepts no more trades.
type ParquetSink struct {
	pw      *writer.ParquetWriter
	stopped bool
}

// NewParquetSink returns a sink writing parquet to w. codec is one of
// "snappy", "gzip" or "" for uncompressed.
func NewParquetSink(w io.Writer, codec string) (*ParquetSink, error) {
	pw, err := writer.NewParquetWriter(&streamFile{w: w}, new(tradeRecord), 1)
	if err != nil {
		return nil, fmt.Errorf("new parquet writer: %w", err)
	}
	switch strings.ToLower(codec) {
	case "snappy":
		pw.CompressionType = parquet.CompressionCodec_SNAPPY
	case "gzip":
		pw.CompressionType = parquet.CompressionCodec_GZIP
	case "", "none":
		pw.CompressionType = parquet.CompressionCodec_UNCOMPRESSED
	default:
		return nil, fmt.Errorf("unsupported parquet codec %q", codec)
	}
	return &ParquetSink{pw: pw}, nil
}

func (s *ParquetSink) Write(trades []market.Trade) error {
	if s.stopped {
		return fmt.Errorf("parquet sink already flushed")
	}
	for _, t := range trades {
		rec := tradeRecord{
			TimeMillis: t.Time.UnixMilli(),
			TradeID:    int64(t.TradeID),
			Price:      t.Price.Float64(),
			Size:       t.Size.Float64(),
			Side:       string(t.Side),
		}
		if err := s.pw.Write(rec); err != nil {
			return fmt.Errorf("write trade %d: %w", t.TradeID, err)
		}
	}
	return nil
}

func (s *ParquetSink) Flush() error {
	if s.stopped {
		return nil
	}
	s.stopped = true
	if err := s.pw.WriteStop(); err != nil {
		return fmt.Errorf("finalize parquet: %w", err)
	}
	return nil
}
