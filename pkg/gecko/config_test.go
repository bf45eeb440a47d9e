package gecko

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromReader(t *testing.T) {
	yaml := `
default: gecko
providers:
  gecko:
    type: geckoterminal
    base_url: https://api.geckoterminal.com/api/v2
    timeout: 10s
`
	cfg, err := LoadConfigFromReader(strings.NewReader(yaml))
	require.NoError(t, err)
	assert.Equal(t, "gecko", cfg.Default)

	provider := cfg.Providers["gecko"]
	require.NotNil(t, provider)
	assert.Equal(t, "geckoterminal", provider.Type)
	assert.Equal(t, "10s", provider.TimeoutRaw)
	assert.Equal(t, "10s", provider.Timeout.String())

	providers, err := cfg.BuildProviders()
	require.NoError(t, err)
	assert.Contains(t, providers, "gecko")
}

func TestLoadConfigFromReader_EnvExpansion(t *testing.T) {
	t.Setenv("GECKO_TEST_BASE", "https://gecko.example/api")
	t.Setenv("GECKO_TEST_TIMEOUT", "7s")

	yaml := `
providers:
  gecko:
    type: geckoterminal
    base_url: ${GECKO_TEST_BASE}
    timeout: ${GECKO_TEST_TIMEOUT}
`
	cfg, err := LoadConfigFromReader(strings.NewReader(yaml))
	require.NoError(t, err)
	assert.Equal(t, "https://gecko.example/api", cfg.Providers["gecko"].BaseURL)
	assert.Equal(t, "7s", cfg.Providers["gecko"].Timeout.String())
}

func TestLoadConfigFromReader_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "no providers", yaml: `default: gecko`},
		{
			name: "unknown default",
			yaml: `
default: missing
providers:
  gecko:
    type: geckoterminal
`,
		},
		{
			name: "unsupported type",
			yaml: `
providers:
  gecko:
    type: sasquatch
`,
		},
		{
			name: "bad timeout",
			yaml: `
providers:
  gecko:
    type: geckoterminal
    timeout: soon
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFromReader(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}
