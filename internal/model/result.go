package model

import (
	"time"

	"github.com/moznion/go-optional"
)

// IndicatorSnapshot holds the latest values of all computed technical
// indicators for one instrument. RSI and the MACD family are always defined
// once the engine has accepted a series; the longer-window statistics stay
// absent until their own warm-up has passed.
type IndicatorSnapshot struct {
	Price     float64
	RSI       float64
	MACD      float64
	Signal    float64
	Histogram float64
	SMA20     optional.Option[float64]
	SMA50     optional.Option[float64]
	SMA200    optional.Option[float64]
	Volume    float64
	AvgVolume optional.Option[float64]
}

// ScreeningResult is the final scoring output for one instrument.
type ScreeningResult struct {
	Ticker   string
	Snapshot IndicatorSnapshot
	Score    int
	Reasons  []string
}

// ScanReport aggregates one full screening pass: results ranked by score
// (stable, descending) plus the tickers that could not be screened.
type ScanReport struct {
	Results       []ScreeningResult
	FailedTickers []string
	ScanTime      time.Time
}
