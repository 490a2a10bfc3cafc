package history

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/kbukum/gdax/errors"
	"github.com/kbukum/gdax/logger"
	"github.com/kbukum/gdax/market"
	"github.com/kbukum/gdax/resilience"
	"github.com/kbukum/gdax/rest"
)

// DefaultRate is the page rate used when Walker.Limiter is nil.
const DefaultRate = 3

// Walker pages through the trades of one product.
type Walker struct {
	Client    *rest.Client
	ProductID string
	// Start, when set, begins the walk at the trades older than this id.
	Start *uint64
	// Limit sets the page size of cursor pages. Zero uses the exchange default.
	Limit int
	// MaxPages stops the walk after this many pages. Zero means no bound.
	MaxPages int
	Retry    resilience.RetryConfig
	// Limiter paces page requests. Defaults to DefaultRate requests per second.
	Limiter *rate.Limiter
	Log     *logger.Logger
}

// Result summarizes a walk. After a failed walk it describes the pages that
// reached the sink, and LastTradeID can seed Start to resume.
type Result struct {
	Pages       int
	Trades      int
	LastTradeID uint64
}

// Walk fetches pages until the tape is exhausted, MaxPages is reached, ctx is
// done, or a page fails after its retries. The sink is flushed on every exit
// path that reached it.
func (w *Walker) Walk(ctx context.Context, sink Sink) (Result, error) {
	var res Result
	if w.Client == nil {
		return res, errors.Connector(fmt.Errorf("history: nil client"))
	}
	if w.ProductID == "" {
		return res, errors.InvalidConfig("history: product id is required")
	}

	log := w.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("history")

	limiter := w.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(DefaultRate, 1)
	}

	retry := w.Retry
	if retry.OnRetry == nil {
		retry.OnRetry = func(attempt int, err error, backoff time.Duration) {
			log.Warn("retrying page", logger.Fields(
				logger.FieldProduct, w.ProductID,
				"attempt", attempt,
				"backoff", backoff.String(),
				logger.FieldError, err.Error(),
			))
		}
	}

	page := w.firstPage()
	for w.MaxPages == 0 || res.Pages < w.MaxPages {
		trades, err := resilience.Retry(ctx, retry, func(ctx context.Context, _ int) ([]market.Trade, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
			return rest.Send(ctx, w.Client, market.GetTrades{ProductID: w.ProductID, Pagination: page})
		})
		if err != nil {
			return res, w.stop(sink, err)
		}
		if len(trades) == 0 {
			break
		}

		if err := sink.Write(trades); err != nil {
			return res, w.stop(sink, fmt.Errorf("history: write page: %w", err))
		}

		last := trades[len(trades)-1].TradeID
		res.Pages++
		res.Trades += len(trades)
		res.LastTradeID = last

		log.Debug("page written", logger.Fields(
			logger.FieldProduct, w.ProductID,
			"page", res.Pages,
			"trades", len(trades),
			"last_trade_id", last,
		))

		next := rest.Page(rest.After(last)).WithLimit(w.Limit)
		page = &next
	}

	if err := sink.Flush(); err != nil {
		return res, fmt.Errorf("history: flush: %w", err)
	}
	log.Info("walk finished", logger.Fields(
		logger.FieldProduct, w.ProductID,
		"pages", res.Pages,
		"trades", res.Trades,
		"last_trade_id", res.LastTradeID,
	))
	return res, nil
}

func (w *Walker) firstPage() *rest.Pagination {
	if w.Start == nil {
		return nil
	}
	p := rest.Page(rest.After(*w.Start)).WithLimit(w.Limit)
	return &p
}

// stop flushes what the sink already holds and returns cause.
func (w *Walker) stop(sink Sink, cause error) error {
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("%w (flush: %v)", cause, err)
	}
	return cause
}
