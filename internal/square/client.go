package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiCalls = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "square_api_calls_total",
		Help: "Total number of Square API calls",
	},
	[]string{"endpoint", "status"},
)

// Client talks to the Connect v2 REST API. Construct one at startup and
// inject it; nothing in here is request-scoped.
type Client struct {
	baseURL string
	token   string
	version string
	timeout time.Duration
	hc      *http.Client
	ua      string
}

func NewClient(baseURL, accessToken, version string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   accessToken,
		version: version,
		timeout: timeout,
		hc:      &http.Client{},
		ua:      "checkout-web/1.0",
	}
}

func (c *Client) do(ctx context.Context, endpoint, method, path string, in, out any) error {
	// ensure per-call timeout if caller didn't set one
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("square: encode %s: %w", endpoint, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("square: build %s: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.ua)
	if c.version != "" {
		req.Header.Set("Square-Version", c.version)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		apiCalls.WithLabelValues(endpoint, "transport_error").Inc()
		return fmt.Errorf("square: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	apiCalls.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("square: read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("square: decode %s response: %w", endpoint, err)
		}
	}
	return nil
}
