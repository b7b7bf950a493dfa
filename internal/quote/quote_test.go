package quote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ewhitmore/habitkit/internal/errs"
)

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/random" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":"Do the work.","author":"Anonymous"}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	q, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if q.Content != "Do the work." || q.Author != "Anonymous" {
		t.Errorf("unexpected quote: %+v", q)
	}
}

func TestFetch_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	_, err := c.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error on 500")
	}
	var netErr *errs.NetworkError
	if !errors.As(err, &netErr) {
		t.Errorf("expected NetworkError, got %T", err)
	}
}

func TestFetch_BadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	_, err := c.Fetch(context.Background())
	var netErr *errs.NetworkError
	if !errors.As(err, &netErr) {
		t.Errorf("expected NetworkError, got %v", err)
	}
}

func TestDaily_FallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	q := c.Daily(context.Background())
	if q.Content == "" {
		t.Error("fallback quote should have content")
	}

	found := false
	for _, fb := range fallbackQuotes {
		if fb == q {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("quote %+v is not one of the fallbacks", q)
	}
}

func TestDaily_UsesFetchedQuote(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"Keep going.","author":"Someone"}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	q := c.Daily(context.Background())
	if q.Content != "Keep going." {
		t.Errorf("expected fetched quote, got %+v", q)
	}
}
