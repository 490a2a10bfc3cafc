package history

import (
	"bytes"
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/kbukum/gdax/errors"
	"github.com/kbukum/gdax/exchangetest"
	"github.com/kbukum/gdax/market"
	"github.com/kbukum/gdax/resilience"
	"github.com/kbukum/gdax/rest"
)

const tradesPath = "/products/BTC-USD/trades"

func fastRetry(attempts int) resilience.RetryConfig {
	return resilience.RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		BackoffFactor:  2,
	}
}

func newWalker(t *testing.T, opts ...exchangetest.Option) (*Walker, *exchangetest.Server) {
	t.Helper()
	srv := exchangetest.New(opts...)
	t.Cleanup(srv.Close)
	client, err := rest.New(rest.Config{BaseURL: srv.URL(), Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("rest.New: %v", err)
	}
	t.Cleanup(client.Close)
	return &Walker{
		Client:    client,
		ProductID: "BTC-USD",
		Retry:     fastRetry(3),
		Limiter:   rate.NewLimiter(rate.Inf, 1),
	}, srv
}

// memSink collects pages and can run a hook after each write.
type memSink struct {
	pages   [][]market.Trade
	flushed int
	onWrite func(page int)
}

func (s *memSink) Write(trades []market.Trade) error {
	s.pages = append(s.pages, trades)
	if s.onWrite != nil {
		s.onWrite(len(s.pages))
	}
	return nil
}

func (s *memSink) Flush() error {
	s.flushed++
	return nil
}

func (s *memSink) ids() []uint64 {
	var ids []uint64
	for _, p := range s.pages {
		for _, t := range p {
			ids = append(ids, t.TradeID)
		}
	}
	return ids
}

func assertDescendingFrom(t *testing.T, ids []uint64, first uint64) {
	t.Helper()
	if uint64(len(ids)) != first {
		t.Fatalf("got %d trades, want %d", len(ids), first)
	}
	for i, id := range ids {
		if want := first - uint64(i); id != want {
			t.Fatalf("trade %d has id %d, want %d", i, id, want)
		}
	}
}

func TestWalk_FromNewest(t *testing.T) {
	w, srv := newWalker(t, exchangetest.WithTape("BTC-USD", 250))
	sink := &memSink{}

	res, err := w.Walk(context.Background(), sink)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if res != (Result{Pages: 3, Trades: 250, LastTradeID: 1}) {
		t.Errorf("result = %+v", res)
	}
	assertDescendingFrom(t, sink.ids(), 250)
	if sink.flushed != 1 {
		t.Errorf("flushed %d times, want 1", sink.flushed)
	}

	reqs := srv.RequestsTo(tradesPath)
	if len(reqs) != 4 {
		t.Fatalf("server saw %d trade requests, want 4", len(reqs))
	}
	if len(reqs[0].Query) != 0 {
		t.Errorf("first page should be unpaginated, got %v", reqs[0].Query)
	}
	wantAfter := []string{"151", "51", "1"}
	for i, want := range wantAfter {
		if got := reqs[i+1].Query.Get("after"); got != want {
			t.Errorf("request %d after = %q, want %q", i+1, got, want)
		}
	}
}

func TestWalk_FromStartWithLimit(t *testing.T) {
	w, srv := newWalker(t, exchangetest.WithTape("BTC-USD", 250))
	start := uint64(120)
	w.Start = &start
	w.Limit = 50
	sink := &memSink{}

	res, err := w.Walk(context.Background(), sink)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if res.Pages != 3 || res.Trades != 119 || res.LastTradeID != 1 {
		t.Errorf("result = %+v", res)
	}
	assertDescendingFrom(t, sink.ids(), 119)

	for _, r := range srv.RequestsTo(tradesPath) {
		if r.Query.Get("limit") != "50" || r.Query.Get("after") == "" {
			t.Errorf("unexpected query %v", r.Query)
		}
	}
}

func TestWalk_ResumesAfterFailure(t *testing.T) {
	w, srv := newWalker(t, exchangetest.WithTape("BTC-USD", 250))
	sink := &memSink{onWrite: func(page int) {
		if page == 1 {
			srv.FailNext(tradesPath, http.StatusServiceUnavailable, 2)
		}
	}}

	res, err := w.Walk(context.Background(), sink)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if res.Trades != 250 {
		t.Errorf("trades = %d, want 250", res.Trades)
	}
	assertDescendingFrom(t, sink.ids(), 250)

	reqs := srv.RequestsTo(tradesPath)
	if len(reqs) != 6 {
		t.Fatalf("server saw %d trade requests, want 6", len(reqs))
	}
	for _, r := range reqs[1:4] {
		if got := r.Query.Get("after"); got != "151" {
			t.Errorf("retried page should reuse its cursor, got after=%q", got)
		}
	}
}

func TestWalk_RetriesExhausted(t *testing.T) {
	w, srv := newWalker(t, exchangetest.WithTape("BTC-USD", 10))
	w.Retry = fastRetry(2)
	srv.FailNext(tradesPath, http.StatusInternalServerError, 10)
	sink := &memSink{}

	res, err := w.Walk(context.Background(), sink)
	if !errors.IsTransport(err) || !errors.IsRetryable(err) {
		t.Fatalf("expected retryable transport error, got %v", err)
	}
	if res != (Result{}) {
		t.Errorf("result = %+v, want zero", res)
	}
	if got := len(srv.RequestsTo(tradesPath)); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
	if sink.flushed != 1 {
		t.Errorf("sink should be flushed on failure, flushed %d", sink.flushed)
	}
}

func TestWalk_NonRetryable(t *testing.T) {
	w, srv := newWalker(t)
	w.ProductID = "DOGE-USD"

	_, err := w.Walk(context.Background(), &memSink{})
	e, ok := errors.As(err)
	if !ok || e.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	if got := len(srv.RequestsTo("/products/DOGE-USD/trades")); got != 1 {
		t.Errorf("non-retryable error was attempted %d times", got)
	}
}

func TestWalk_MaxPages(t *testing.T) {
	w, _ := newWalker(t, exchangetest.WithTape("BTC-USD", 250))
	w.MaxPages = 1
	sink := &memSink{}

	res, err := w.Walk(context.Background(), sink)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if res.Pages != 1 || res.Trades != 100 || res.LastTradeID != 151 {
		t.Errorf("result = %+v", res)
	}
}

func TestWalk_EmptyTape(t *testing.T) {
	w, _ := newWalker(t)
	var buf bytes.Buffer

	res, err := w.Walk(context.Background(), NewCSVSink(&buf))
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if res.Pages != 0 {
		t.Errorf("pages = %d", res.Pages)
	}
	if got := buf.String(); got != "time,trade_id,price,size,side\n" {
		t.Errorf("csv = %q", got)
	}
}

func TestWalk_Canceled(t *testing.T) {
	w, _ := newWalker(t, exchangetest.WithTape("BTC-USD", 10))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.Walk(ctx, &memSink{})
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWalk_Invalid(t *testing.T) {
	if _, err := (&Walker{ProductID: "BTC-USD"}).Walk(context.Background(), &memSink{}); !errors.IsConnector(err) {
		t.Errorf("nil client: %v", err)
	}
	w, _ := newWalker(t)
	w.ProductID = ""
	if _, err := w.Walk(context.Background(), &memSink{}); !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("empty product: %v", err)
	}
}

func TestWalk_CSV(t *testing.T) {
	w, _ := newWalker(t, exchangetest.WithTape("BTC-USD", 3))
	var buf bytes.Buffer

	if _, err := w.Walk(context.Background(), NewCSVSink(&buf)); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"time,trade_id,price,size,side",
		"2014-11-07T00:00:03Z,3,103,0.01,buy",
		"2014-11-07T00:00:02Z,2,102,0.01,sell",
		"2014-11-07T00:00:01Z,1,101,0.01,buy",
	}
	if len(lines) != len(want) {
		t.Fatalf("csv lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
