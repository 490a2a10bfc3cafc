package main

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/gdax/exchangetest"
	"github.com/kbukum/gdax/rest"
)

func TestPrintTickers(t *testing.T) {
	srv := exchangetest.New()
	defer srv.Close()
	client, err := rest.New(rest.Config{BaseURL: srv.URL()})
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	local := time.Date(2015, 1, 7, 23, 47, 30, 201_000_000, time.UTC)
	var out bytes.Buffer
	if err := printTickers(context.Background(), client, &out, func() time.Time { return local }); err != nil {
		t.Fatalf("printTickers: %v", err)
	}

	want := "exchange time: 2015-01-07T23:47:25.201Z\tlocal clock skew: 5s\n" +
		"BTC-USD\tprice: 333.99\tvolume: 5957.11914015\ttime: 2015-11-14T20:46:03.511254Z\n" +
		"ETH-USD\tprice: 333.99\tvolume: 5957.11914015\ttime: 2015-11-14T20:46:03.511254Z\n"
	if got := out.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestPrintTickers_Failure(t *testing.T) {
	srv := exchangetest.New()
	defer srv.Close()
	srv.FailNext("/products/ETH-USD/ticker", http.StatusInternalServerError, 1)
	client, _ := rest.New(rest.Config{BaseURL: srv.URL()})
	defer client.Close()

	err := printTickers(context.Background(), client, &bytes.Buffer{}, time.Now)
	if err == nil || !strings.Contains(err.Error(), "ticker ETH-USD") {
		t.Errorf("err = %v", err)
	}
}

func TestRun(t *testing.T) {
	srv := exchangetest.New()
	defer srv.Close()
	t.Chdir(t.TempDir())

	for i := range 2 {
		var out bytes.Buffer
		err := run(context.Background(), []string{"--base-url", srv.URL(), "--log-level", "error"}, &out)
		if err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
		if got := strings.Count(out.String(), "\n"); got != 3 {
			t.Errorf("run %d printed %d lines, want 3:\n%s", i+1, got, out.String())
		}
	}
}

func TestRun_BadFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := run(context.Background(), []string{"--env", "moon"}, &bytes.Buffer{}); err == nil {
		t.Error("expected invalid environment error")
	}
	if err := run(context.Background(), []string{"--no-such-flag"}, &bytes.Buffer{}); err == nil {
		t.Error("expected unknown flag error")
	}
}
