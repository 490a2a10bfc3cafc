package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"

	"github.com/kbukum/gdax/market"
	"github.com/kbukum/gdax/rest"
)

// tickerRate paces ticker requests below the exchange's public rate limit.
const tickerRate = 3

func printTickers(ctx context.Context, client *rest.Client, out io.Writer, now func() time.Time) error {
	timeCh := rest.SendAsync(ctx, client, market.GetTime{})
	productsCh := rest.SendAsync(ctx, client, market.GetProducts{})

	serverTime := <-timeCh
	products := <-productsCh
	if serverTime.Err != nil {
		return fmt.Errorf("get time: %w", serverTime.Err)
	}
	if products.Err != nil {
		return fmt.Errorf("get products: %w", products.Err)
	}

	fmt.Fprintf(out, "exchange time: %s\tlocal clock skew: %s\n",
		serverTime.Value.ISO.Format(time.RFC3339Nano), serverTime.Value.Skew(now()))

	limiter := rate.NewLimiter(tickerRate, 1)
	for _, p := range products.Value {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		t, err := rest.Send(ctx, client, market.GetProductTicker{ProductID: p.ID})
		if err != nil {
			return fmt.Errorf("ticker %s: %w", p.ID, err)
		}
		fmt.Fprintf(out, "%s\tprice: %s\tvolume: %s\ttime: %s\n",
			p.ID, t.Price, t.Volume, t.Time.Format(time.RFC3339Nano))
	}
	return nil
}
