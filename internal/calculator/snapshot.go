package calculator

import (
	"fmt"

	"SwingScreener/internal/model"
)

// Fixed moving-average windows. These are part of the screening rule
// semantics, not configuration.
const (
	SMAShortWindow  = 20
	SMAMediumWindow = 50
	SMALongWindow   = 200
	VolumeWindow    = 20
)

// Periods configures the tunable indicator spans.
type Periods struct {
	RSI        int
	MACDFast   int
	MACDSlow   int
	MACDSignal int
}

// DefaultPeriods returns the conventional RSI(14) / MACD(12,26,9) spans.
func DefaultPeriods() Periods {
	return Periods{RSI: 14, MACDFast: 12, MACDSlow: 26, MACDSignal: 9}
}

// BuildSnapshot computes all indicators against a daily bar series and returns
// the latest values. The series must be ordered oldest first. A series shorter
// than the RSI period yields an InsufficientDataError; longer-window means may
// still be absent from the snapshot and comparisons against them fail closed
// downstream.
func BuildSnapshot(symbol string, bars []model.OHLCV, p Periods) (model.IndicatorSnapshot, error) {
	if len(bars) < p.RSI {
		return model.IndicatorSnapshot{}, &InsufficientDataError{Symbol: symbol, Required: p.RSI, Actual: len(bars)}
	}

	closes := model.Closes(bars)
	last := len(bars) - 1

	rsi, err := RSI(closes, p.RSI)
	if err != nil {
		return model.IndicatorSnapshot{}, fmt.Errorf("rsi: %w", err)
	}
	latestRSI, err := rsi[last].Take()
	if err != nil {
		return model.IndicatorSnapshot{}, &InsufficientDataError{Symbol: symbol, Required: p.RSI, Actual: len(bars)}
	}

	macd, err := MACD(closes, p.MACDFast, p.MACDSlow, p.MACDSignal)
	if err != nil {
		return model.IndicatorSnapshot{}, fmt.Errorf("macd: %w", err)
	}

	sma20, err := RollingMean(closes, SMAShortWindow)
	if err != nil {
		return model.IndicatorSnapshot{}, fmt.Errorf("sma%d: %w", SMAShortWindow, err)
	}
	sma50, err := RollingMean(closes, SMAMediumWindow)
	if err != nil {
		return model.IndicatorSnapshot{}, fmt.Errorf("sma%d: %w", SMAMediumWindow, err)
	}
	sma200, err := RollingMean(closes, SMALongWindow)
	if err != nil {
		return model.IndicatorSnapshot{}, fmt.Errorf("sma%d: %w", SMALongWindow, err)
	}
	avgVolume, err := RollingMean(model.Volumes(bars), VolumeWindow)
	if err != nil {
		return model.IndicatorSnapshot{}, fmt.Errorf("volume mean: %w", err)
	}

	return model.IndicatorSnapshot{
		Price:     closes[last],
		RSI:       latestRSI,
		MACD:      macd.MACD[last],
		Signal:    macd.Signal[last],
		Histogram: macd.Histogram[last],
		SMA20:     sma20[last],
		SMA50:     sma50[last],
		SMA200:    sma200[last],
		Volume:    bars[last].Volume,
		AvgVolume: avgVolume[last],
	}, nil
}
