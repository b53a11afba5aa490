package calculator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SwingScreener/internal/model"
)

func linearBars(start, step float64, n int) []model.OHLCV {
	bars := make([]model.OHLCV, n)
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		c := start + float64(i)*step
		bars[i] = model.OHLCV{
			Time:   day.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000 + float64(i),
		}
	}
	return bars
}

func TestBuildSnapshotRefusesShortSeries(t *testing.T) {
	_, err := BuildSnapshot("BBCA.JK", linearBars(100, 1, 13), DefaultPeriods())
	require.Error(t, err)
	assert.True(t, IsInsufficientData(err))

	var insufficient *InsufficientDataError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 14, insufficient.Required)
	assert.Equal(t, 13, insufficient.Actual)
	assert.Equal(t, "BBCA.JK", insufficient.Symbol)
}

func TestBuildSnapshotExactlyPeriodBars(t *testing.T) {
	snap, err := BuildSnapshot("BBRI.JK", linearBars(100, 1, 14), DefaultPeriods())
	require.NoError(t, err)

	assert.Equal(t, 113.0, snap.Price)
	assert.Equal(t, 100.0, snap.RSI) // monotonic rise saturates

	// Too few bars for any of the moving-average windows.
	assert.True(t, snap.SMA20.IsNone())
	assert.True(t, snap.SMA50.IsNone())
	assert.True(t, snap.SMA200.IsNone())
	assert.True(t, snap.AvgVolume.IsNone())
}

func TestBuildSnapshotHundredBars(t *testing.T) {
	snap, err := BuildSnapshot("TLKM.JK", linearBars(100, 1, 100), DefaultPeriods())
	require.NoError(t, err)

	assert.True(t, snap.SMA20.IsSome())
	assert.True(t, snap.SMA50.IsSome())
	assert.True(t, snap.SMA200.IsNone(), "200-day window exceeds available history")
	assert.True(t, snap.AvgVolume.IsSome())

	// Mean of the last 20 of 100..199 is 189.5.
	sma20, err := snap.SMA20.Take()
	require.NoError(t, err)
	assert.InDelta(t, 189.5, sma20, 1e-9)
}

func TestBuildSnapshotFullHistory(t *testing.T) {
	snap, err := BuildSnapshot("ASII.JK", linearBars(100, 1, 250), DefaultPeriods())
	require.NoError(t, err)

	assert.True(t, snap.SMA200.IsSome())

	sma200, err := snap.SMA200.Take()
	require.NoError(t, err)
	// Mean of the last 200 of a unit rise ending at 349 is 249.5.
	assert.InDelta(t, 249.5, sma200, 1e-9)

	assert.Equal(t, 349.0, snap.Price)
	assert.Greater(t, snap.Histogram, 0.0)
	assert.Equal(t, snap.Volume, 1000.0+249.0)
}

func TestBuildSnapshotFlatSeries(t *testing.T) {
	snap, err := BuildSnapshot("UNVR.JK", linearBars(500, 0, 60), DefaultPeriods())
	require.NoError(t, err)

	assert.Equal(t, 50.0, snap.RSI)
	assert.InDelta(t, 0.0, snap.MACD, 1e-12)
	assert.InDelta(t, 0.0, snap.Histogram, 1e-12)
}
