package types

type HealthResponse struct {
	OK        bool  `json:"ok"`
	Timestamp int64 `json:"timestamp"`
}

type PriceResponse struct {
	Price string `json:"price"`
}

type PriceTickRequest struct {
	Price float64 `json:"price"`
}

type PriceTickResponse struct {
	Success bool `json:"success"`
}

type PriceTicksRequest struct {
	Limit int `form:"limit,default=100"`
}

type PriceTick struct {
	Price     float64 `json:"price"`
	Timestamp int64   `json:"timestamp"`
}

type PriceTicksResponse struct {
	Ticks []PriceTick `json:"ticks"`
}

type ChartSeries struct {
	Prices [][2]float64 `json:"prices"`
}

type ChartResponse struct {
	Series ChartSeries `json:"series"`
}

type StatsRequest struct {
	Network string `form:"network,optional"`
	Pool    string `form:"pool,optional"`
	Hours   int    `form:"hours,default=24"`
	Limit   int    `form:"limit,default=200"`
}

type StatsResponse struct {
	MarketCapUSD              *float64          `json:"marketCapUsd"`
	FdvUSD                    *float64          `json:"fdvUsd"`
	LockedLiquidityPercentage *float64          `json:"lockedLiquidityPercentage"`
	Holders                   *int64            `json:"holders"`
	TradingVolumeUSDPeriod    float64           `json:"tradingVolumeUsdPeriod"`
	PeriodHours               int               `json:"periodHours"`
	TradesConsidered          int               `json:"tradesConsidered"`
	LimitRequested            int               `json:"limitRequested"`
	Sources                   map[string]string `json:"sources"`
	Formatted                 StatsFormatted    `json:"formatted"`
}

// StatsFormatted carries display-ready renderings of the headline figures.
// Additive to the snapshot shape; raw fields stay authoritative.
type StatsFormatted struct {
	MarketCapUSD           *string `json:"marketCapUsd"`
	FdvUSD                 *string `json:"fdvUsd"`
	TradingVolumeUSDPeriod *string `json:"tradingVolumeUsdPeriod"`
}

type TradesRequest struct {
	Network string `form:"network,optional"`
	Pool    string `form:"pool,optional"`
	Limit   int    `form:"limit,default=50"`
}

type TradeAttributes struct {
	BlockNumber              int64  `json:"block_number"`
	BlockTimestamp           string `json:"block_timestamp"`
	TxHash                   string `json:"tx_hash"`
	TxFromAddress            string `json:"tx_from_address"`
	FromTokenAmount          string `json:"from_token_amount"`
	ToTokenAmount            string `json:"to_token_amount"`
	PriceFromInCurrencyToken string `json:"price_from_in_currency_token"`
	PriceToInCurrencyToken   string `json:"price_to_in_currency_token"`
	PriceFromInUSD           string `json:"price_from_in_usd"`
	PriceToInUSD             string `json:"price_to_in_usd"`
	Kind                     string `json:"kind"`
	VolumeInUSD              string `json:"volume_in_usd"`
	FromTokenAddress         string `json:"from_token_address"`
	ToTokenAddress           string `json:"to_token_address"`
}

type Trade struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes TradeAttributes `json:"attributes"`
}

type TradesResponse struct {
	Trades              []Trade `json:"trades"`
	AggregatedVolumeUSD string  `json:"aggregatedVolumeUsd"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
