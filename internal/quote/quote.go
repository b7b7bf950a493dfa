// Package quote fetches a daily motivational quote, falling back to a fixed
// list when the network is unavailable.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/ewhitmore/habitkit/internal/errs"
)

const defaultBaseURL = "https://api.quotable.io"

// Quote is a single motivational quote.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

var fallbackQuotes = []Quote{
	{Content: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Content: "Small daily improvements are the key to staggering long-term results.", Author: "Unknown"},
	{Content: "You don't have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
	{Content: "Success is the sum of small efforts repeated day in and day out.", Author: "Robert Collier"},
	{Content: "A journey of a thousand miles begins with a single step.", Author: "Lao Tzu"},
	{Content: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Content: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Fetch requests a random inspirational quote. Network or format failures
// are returned as NetworkError.
func (c *Client) Fetch(ctx context.Context) (Quote, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	url := base + "/random?tags=inspirational|motivational"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Quote{}, &errs.NetworkError{Op: "quote fetch", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return Quote{}, &errs.NetworkError{Op: "quote fetch", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quote{}, &errs.NetworkError{Op: "quote fetch", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Quote{}, &errs.NetworkError{Op: "quote fetch", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var q Quote
	if err := json.Unmarshal(body, &q); err != nil {
		return Quote{}, &errs.NetworkError{Op: "quote fetch", Err: err}
	}
	return q, nil
}

// Daily returns a quote for display, substituting a random fallback on any
// fetch failure.
func (c *Client) Daily(ctx context.Context) Quote {
	q, err := c.Fetch(ctx)
	if err != nil {
		return fallbackQuotes[rand.Intn(len(fallbackQuotes))]
	}
	return q
}
