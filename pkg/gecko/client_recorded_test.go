package gecko

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/dnaeon/go-vcr/recorder"
	"github.com/stretchr/testify/assert"
)

// This test uses go-vcr to record/replay a real pool-detail call.
// It skips by default if the cassette is absent and RECORD_CASSETTES != 1.
func TestClient_FetchPool_Recorded(t *testing.T) {
	cassette := filepath.Join("testdata", "cassettes", "gecko_pool.yaml")
	if _, err := os.Stat(cassette); os.IsNotExist(err) {
		if os.Getenv("RECORD_CASSETTES") != "1" {
			t.Skipf("cassette missing; set RECORD_CASSETTES=1 to record: %s", cassette)
		}
		err := os.MkdirAll(filepath.Dir(cassette), 0o755)
		assert.NoError(t, err, "mkdir cassettes dir should succeed")
	}

	r, err := recorder.New(cassette)
	assert.NoError(t, err, "recorder.New should not error")
	assert.NotNil(t, r, "recorder should not be nil")
	defer func() { _ = r.Stop() }()

	httpClient := &http.Client{Transport: r}
	client := NewClient(WithHTTPClient(httpClient))
	ctx := context.Background()

	attrs, err := client.FetchPool(ctx, "solana", "9h7GAGU8T75jdD2uHhFGEMHzCLLDXdgireWZho8jgnKp")
	assert.NoError(t, err, "FetchPool should not error")
	assert.NotNil(t, attrs, "attributes should not be nil")
	price, ok := attrs.BaseTokenPriceUSD.Float()
	assert.True(t, ok, "base token price should be present")
	assert.Greater(t, price, 0.0, "base token price should be positive")
}
