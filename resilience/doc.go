// Package resilience retries exchange calls with exponential backoff.
//
// The rest client never retries on its own; tools that page through history
// wrap each call:
//
//	trades, err := resilience.Retry(ctx, resilience.DefaultRetryConfig(),
//	    func(ctx context.Context, attempt int) ([]market.Trade, error) {
//	        return rest.Send(ctx, c, market.GetTrades{ProductID: id, Pagination: &page})
//	    })
//
// By default only errors marked retryable (timeouts, connection failures, 429 and
// 5xx responses) are retried.
package resilience
