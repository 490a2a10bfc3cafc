package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/time/rate"

	"github.com/kbukum/gdax/history"
	"github.com/kbukum/gdax/logger"
	"github.com/kbukum/gdax/rest"
)

func download(ctx context.Context, client *rest.Client, cfg Config, log *logger.Logger, out io.Writer) error {
	d := cfg.Download
	f, err := os.Create(d.Out)
	if err != nil {
		return err
	}
	defer f.Close()

	var sink history.Sink
	switch d.Format {
	case "parquet":
		ps, err := history.NewParquetSink(f, d.Codec)
		if err != nil {
			return err
		}
		sink = ps
	default:
		sink = history.NewCSVSink(f)
	}

	w := &history.Walker{
		Client:    client,
		ProductID: d.Product,
		Limit:     d.Limit,
		Retry:     cfg.Retry,
		Limiter:   rate.NewLimiter(rate.Limit(d.Rate), 1),
		Log:       log,
	}
	if d.Start > 0 {
		w.Start = &d.Start
	}

	fmt.Fprintf(out, "downloading %s into %s\n", d.Product, d.Out)
	res, err := w.Walk(ctx, sink)
	if err != nil {
		if res.Pages > 0 {
			fmt.Fprintf(out, "stopped after %d trades; resume with --start %d\n", res.Trades, res.LastTradeID)
		}
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %d trades in %d pages, oldest trade id %d\n", res.Trades, res.Pages, res.LastTradeID)
	return nil
}
