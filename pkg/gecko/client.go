package gecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	defaultBaseURL     = "https://api.geckoterminal.com/api/v2"
	defaultHTTPTimeout = 10 * time.Second

	// MaxTradeLimit is the provider-side page cap; larger requests are
	// clamped, never rejected.
	MaxTradeLimit = 500

	maxErrorBody = 512
)

var _ Provider = (*Client)(nil)

// Client wraps access to the GeckoTerminal public API. It performs no
// retries; retry policy belongs to the caller's schedule, not this layer.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a new Client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the default API root.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout overrides the per-request timeout (default 10s).
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient constructs a GeckoTerminal API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func init() {
	RegisterProvider("geckoterminal", func(name string, cfg *ProviderConfig) (Provider, error) {
		var opts []Option
		if cfg.BaseURL != "" {
			opts = append(opts, WithBaseURL(cfg.BaseURL))
		}
		if cfg.Timeout > 0 {
			opts = append(opts, WithTimeout(cfg.Timeout))
		}
		return NewClient(opts...), nil
	})
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &UpstreamError{Op: "build request", URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Op: "request", URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Op: "read response", URL: endpoint, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UpstreamError{
			Op:         "request",
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", truncateBody(body)),
		}
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &UpstreamError{Op: "decode response", URL: endpoint, StatusCode: resp.StatusCode, Err: err}
		}
	}
	return nil
}

func poolPath(network, pool string) string {
	return fmt.Sprintf("/networks/%s/pools/%s", url.PathEscape(network), url.PathEscape(pool))
}

// FetchPool returns the raw pool-detail attributes.
func (c *Client) FetchPool(ctx context.Context, network, pool string) (*PoolAttributes, error) {
	var envelope struct {
		Data struct {
			Attributes PoolAttributes `json:"attributes"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, poolPath(network, pool), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Attributes, nil
}

// PoolStats fetches and normalizes pool-level attributes. Pool stats are
// best-effort enrichment: every failure mode degrades to all-nil fields and
// the request that triggered the lookup proceeds without them.
func (c *Client) PoolStats(ctx context.Context, network, pool string) *PoolStats {
	attrs, err := c.FetchPool(ctx, network, pool)
	if err != nil {
		logx.WithContext(ctx).Errorf("gecko: pool stats degraded to nulls: %v", err)
		return &PoolStats{}
	}
	return attrs.Stats()
}

// FetchTrades returns up to limit recent trades. The limit is clamped to
// [1, MaxTradeLimit] before the upstream call.
func (c *Client) FetchTrades(ctx context.Context, network, pool string, limit int) ([]Trade, error) {
	limit = ClampTradeLimit(limit)
	var envelope struct {
		Data []Trade `json:"data"`
	}
	query := url.Values{"limit": []string{fmt.Sprint(limit)}}
	if err := c.getJSON(ctx, poolPath(network, pool)+"/trades", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// FetchOHLCV returns candles for the given timeframe.
func (c *Client) FetchOHLCV(ctx context.Context, network, pool, timeframe string) ([]Candle, error) {
	var envelope struct {
		Data struct {
			Attributes struct {
				OHLCVList []Candle `json:"ohlcv_list"`
			} `json:"attributes"`
		} `json:"data"`
	}
	path := poolPath(network, pool) + "/ohlcv/" + url.PathEscape(timeframe)
	if err := c.getJSON(ctx, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Attributes.OHLCVList, nil
}

// CurrentPrice returns the base token USD price from the pool detail payload.
// A present response with an absent price field yields (0, nil).
func (c *Client) CurrentPrice(ctx context.Context, network, pool string) (float64, error) {
	attrs, err := c.FetchPool(ctx, network, pool)
	if err != nil {
		return 0, err
	}
	price, _ := attrs.BaseTokenPriceUSD.Float()
	return price, nil
}

// ClampTradeLimit normalizes a caller-supplied trade page size into the
// provider's accepted range.
func ClampTradeLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxTradeLimit {
		return MaxTradeLimit
	}
	return limit
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
