// Package history downloads a product's trade tape page by page.
//
// A Walker starts at the newest trade, or just below a given trade id, and
// follows the after cursor toward older trades until the exchange returns an
// empty page. Each page is handed to a Sink. Failed pages are retried from the
// cursor they were requested with, so a sink never sees a trade twice.
//
//	w := &history.Walker{Client: client, ProductID: "BTC-USD"}
//	res, err := w.Walk(ctx, history.NewCSVSink(f))
package history
