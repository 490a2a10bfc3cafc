package exchangetest

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func get(t *testing.T, srv *Server, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(srv.URL() + target)
	if err != nil {
		t.Fatalf("GET %s: %v", target, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func tradeIDs(t *testing.T, body []byte) []uint64 {
	t.Helper()
	var trades []Trade
	if err := json.Unmarshal(body, &trades); err != nil {
		t.Fatalf("decode trades %s: %v", body, err)
	}
	ids := make([]uint64, len(trades))
	for i, tr := range trades {
		ids[i] = tr.TradeID
	}
	return ids
}

func equalIDs(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTrades_Paging(t *testing.T) {
	srv := New(WithTape("BTC-USD", 10))
	defer srv.Close()

	tests := []struct {
		name   string
		target string
		want   []uint64
	}{
		{"latest", "/products/BTC-USD/trades?limit=3", []uint64{10, 9, 8}},
		{"after", "/products/BTC-USD/trades?after=8&limit=3", []uint64{7, 6, 5}},
		{"after near end", "/products/BTC-USD/trades?after=3&limit=5", []uint64{2, 1}},
		{"after exhausted", "/products/BTC-USD/trades?after=1", []uint64{}},
		{"before", "/products/BTC-USD/trades?before=4&limit=2", []uint64{6, 5}},
		{"before newest", "/products/BTC-USD/trades?before=10", []uint64{}},
		{"default limit", "/products/BTC-USD/trades", []uint64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{"limit clamp", "/products/BTC-USD/trades?limit=500&after=3", []uint64{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv, tt.target)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, body %s", resp.StatusCode, body)
			}
			if got := tradeIDs(t, body); !equalIDs(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrades_CursorHeaders(t *testing.T) {
	srv := New(WithTape("BTC-USD", 10))
	defer srv.Close()

	resp, _ := get(t, srv, "/products/BTC-USD/trades?after=8&limit=3")
	if got := resp.Header.Get("CB-BEFORE"); got != "7" {
		t.Errorf("CB-BEFORE = %q, want 7", got)
	}
	if got := resp.Header.Get("CB-AFTER"); got != "5" {
		t.Errorf("CB-AFTER = %q, want 5", got)
	}

	resp, _ = get(t, srv, "/products/BTC-USD/trades?after=1")
	if got := resp.Header.Get("CB-AFTER"); got != "" {
		t.Errorf("empty page should carry no CB-AFTER, got %q", got)
	}
}

func TestTrades_BadParams(t *testing.T) {
	srv := New()
	defer srv.Close()

	for _, target := range []string{
		"/products/BTC-USD/trades?limit=0",
		"/products/BTC-USD/trades?limit=abc",
		"/products/BTC-USD/trades?after=-1",
		"/products/BTC-USD/trades?before=x",
	} {
		resp, _ := get(t, srv, target)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, resp.StatusCode)
		}
	}
}

func TestUnknownProduct(t *testing.T) {
	srv := New()
	defer srv.Close()

	for _, target := range []string{
		"/products/DOGE-USD/ticker",
		"/products/DOGE-USD/book?level=2",
		"/products/DOGE-USD/trades",
		"/nope",
	} {
		resp, body := get(t, srv, target)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", target, resp.StatusCode)
		}
		var msg struct{ Message string }
		if err := json.Unmarshal(body, &msg); err != nil || msg.Message != "NotFound" {
			t.Errorf("%s: body = %s", target, body)
		}
	}
}

func TestBook_Levels(t *testing.T) {
	srv := New()
	defer srv.Close()

	tests := []struct {
		query  string
		status int
		body   string
	}{
		{"", http.StatusOK, BookLevel1JSON},
		{"?level=1", http.StatusOK, BookLevel1JSON},
		{"?level=2", http.StatusOK, BookLevel2JSON},
		{"?level=3", http.StatusOK, BookLevel3JSON},
		{"?level=4", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		resp, body := get(t, srv, "/products/BTC-USD/book"+tt.query)
		if resp.StatusCode != tt.status {
			t.Errorf("level %q: status = %d, want %d", tt.query, resp.StatusCode, tt.status)
			continue
		}
		if tt.body != "" && string(body) != tt.body {
			t.Errorf("level %q: body = %s", tt.query, body)
		}
	}
}

func TestFailNext(t *testing.T) {
	srv := New()
	defer srv.Close()
	srv.FailNext("/time", http.StatusServiceUnavailable, 2)

	for i, want := range []int{503, 503, 200} {
		resp, _ := get(t, srv, "/time")
		if resp.StatusCode != want {
			t.Errorf("request %d: status = %d, want %d", i, resp.StatusCode, want)
		}
	}
	if got := len(srv.RequestsTo("/time")); got != 3 {
		t.Errorf("recorded %d requests, want 3", got)
	}
}

func TestRequests_Recorded(t *testing.T) {
	srv := New()
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL()+"/products/BTC-USD/trades?after=5&limit=2", nil)
	req.Header.Set("User-Agent", "probe/1")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	got := srv.Requests()
	if len(got) != 1 {
		t.Fatalf("recorded %d requests, want 1", len(got))
	}
	r := got[0]
	if r.Method != http.MethodGet || r.Path != "/products/BTC-USD/trades" {
		t.Errorf("unexpected request %+v", r)
	}
	if r.Query.Get("after") != "5" || r.Query.Get("limit") != "2" {
		t.Errorf("query = %v", r.Query)
	}
	if r.Header.Get("User-Agent") != "probe/1" {
		t.Errorf("user agent = %q", r.Header.Get("User-Agent"))
	}
}

func TestTape(t *testing.T) {
	trades := Tape(3)
	if len(trades) != 3 || trades[0].TradeID != 1 || trades[2].TradeID != 3 {
		t.Fatalf("unexpected tape %+v", trades)
	}
	if trades[0].Side != "buy" || trades[1].Side != "sell" {
		t.Errorf("sides = %s, %s", trades[0].Side, trades[1].Side)
	}
	if !trades[1].Time.After(trades[0].Time) {
		t.Error("tape times should increase with trade id")
	}
}
