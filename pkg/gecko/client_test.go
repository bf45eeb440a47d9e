package gecko

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(WithBaseURL(server.URL), WithHTTPClient(server.Client())), server
}

func TestClient_FetchPool(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/networks/solana/pools/pool-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{
			"data": {
				"attributes": {
					"base_token_price_usd": "0.5",
					"market_cap_usd": "1000000",
					"fdv_usd": "2000000"
				}
			}
		}`))
	})
	defer server.Close()

	attrs, err := client.FetchPool(context.Background(), "solana", "pool-1")
	require.NoError(t, err)

	stats := attrs.Stats()
	require.NotNil(t, stats.MarketCapUSD)
	assert.Equal(t, 1_000_000.0, *stats.MarketCapUSD)
	require.NotNil(t, stats.FdvUSD)
	assert.Equal(t, 2_000_000.0, *stats.FdvUSD)
	assert.Nil(t, stats.LockedLiquidityPercentage)
}

func TestClient_PoolStats_AbsorbsFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "unparseable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data": [broken`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(tt.handler)
			defer server.Close()

			stats := client.PoolStats(context.Background(), "solana", "pool-1")
			require.NotNil(t, stats)
			assert.Nil(t, stats.MarketCapUSD)
			assert.Nil(t, stats.FdvUSD)
			assert.Nil(t, stats.LockedLiquidityPercentage)
		})
	}
}

func TestClient_FetchTrades(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/networks/solana/pools/pool-1/trades", r.URL.Path)
		assert.Equal(t, "200", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": "t-1",
					"type": "trade",
					"attributes": {
						"block_timestamp": "2024-05-01T12:00:00Z",
						"volume_in_usd": "150.25",
						"kind": "buy"
					}
				}
			]
		}`))
	})
	defer server.Close()

	trades, err := client.FetchTrades(context.Background(), "solana", "pool-1", 200)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "t-1", trades[0].ID)
	assert.Equal(t, "2024-05-01T12:00:00Z", trades[0].Attributes.BlockTimestamp)
	assert.Equal(t, "150.25", trades[0].Attributes.VolumeInUSD)
}

func TestClient_FetchTrades_ClampsLimit(t *testing.T) {
	var gotLimit string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"data": []}`))
	})
	defer server.Close()

	_, err := client.FetchTrades(context.Background(), "solana", "pool-1", 10000)
	require.NoError(t, err)
	assert.Equal(t, "500", gotLimit)

	_, err = client.FetchTrades(context.Background(), "solana", "pool-1", 0)
	require.NoError(t, err)
	assert.Equal(t, "1", gotLimit)
}

func TestClient_FetchTrades_SurfacesUpstreamError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	defer server.Close()

	_, err := client.FetchTrades(context.Background(), "solana", "pool-1", 50)
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
}

func TestClient_FetchOHLCV(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/networks/solana/pools/pool-1/ohlcv/minute", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"data": {
				"attributes": {
					"ohlcv_list": [
						[1700000000, 1, 2, 0.5, 1.5, 100],
						[1700000060, 1.5, 1.6, 1.4, 1.45, 80]
					]
				}
			}
		}`))
	})
	defer server.Close()

	candles, err := client.FetchOHLCV(context.Background(), "solana", "pool-1", "minute")
	require.NoError(t, err)
	require.Len(t, candles, 2)
	assert.Equal(t, int64(1700000000), candles[0].Timestamp)
	assert.Equal(t, 1.5, candles[0].Close)
	assert.Equal(t, 1.45, candles[1].Close)
}

func TestClient_CurrentPrice(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"attributes": map[string]any{"base_token_price_usd": "0.0012345"},
				},
			})
		})
		defer server.Close()

		price, err := client.CurrentPrice(context.Background(), "solana", "pool-1")
		require.NoError(t, err)
		assert.Equal(t, 0.0012345, price)
	})

	t.Run("absent field is not an error", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": {"attributes": {}}}`))
		})
		defer server.Close()

		price, err := client.CurrentPrice(context.Background(), "solana", "pool-1")
		require.NoError(t, err)
		assert.Zero(t, price)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		})
		defer server.Close()

		_, err := client.CurrentPrice(context.Background(), "solana", "pool-1")
		var upstream *UpstreamError
		require.True(t, errors.As(err, &upstream))
	})
}

func TestClampTradeLimit(t *testing.T) {
	assert.Equal(t, 1, ClampTradeLimit(-5))
	assert.Equal(t, 1, ClampTradeLimit(0))
	assert.Equal(t, 50, ClampTradeLimit(50))
	assert.Equal(t, 500, ClampTradeLimit(500))
	assert.Equal(t, 500, ClampTradeLimit(10000))
}
