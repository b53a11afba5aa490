package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMACDAlignment(t *testing.T) {
	closes := linearSeries(50, 0.5, 60)

	out, err := MACD(closes, 12, 26, 9)
	require.NoError(t, err)

	require.Len(t, out.MACD, 60)
	require.Len(t, out.Signal, 60)
	require.Len(t, out.Histogram, 60)

	for i := range closes {
		assert.InDelta(t, out.MACD[i]-out.Signal[i], out.Histogram[i], 1e-12, "index %d", i)
	}
}

func TestMACDRisingTrendTurnsBullish(t *testing.T) {
	out, err := MACD(linearSeries(100, 1, 80), 12, 26, 9)
	require.NoError(t, err)

	last := len(out.MACD) - 1
	assert.Greater(t, out.MACD[last], 0.0)
	assert.Greater(t, out.MACD[last], out.Signal[last])
	assert.Greater(t, out.Histogram[last], 0.0)
}

func TestMACDFallingTrendTurnsBearish(t *testing.T) {
	out, err := MACD(linearSeries(200, -1, 80), 12, 26, 9)
	require.NoError(t, err)

	last := len(out.MACD) - 1
	assert.Less(t, out.MACD[last], 0.0)
	assert.Less(t, out.Histogram[last], 0.0)
}

func TestMACDConstantSeriesIsZero(t *testing.T) {
	out, err := MACD(constantSeries(42, 50), 12, 26, 9)
	require.NoError(t, err)

	for i := range out.MACD {
		assert.InDelta(t, 0.0, out.MACD[i], 1e-12)
		assert.InDelta(t, 0.0, out.Histogram[i], 1e-12)
	}
}

func TestMACDRejectsBadSpans(t *testing.T) {
	_, err := MACD([]float64{1, 2}, 0, 26, 9)
	assert.Error(t, err)

	_, err = MACD([]float64{1, 2}, 12, 26, 0)
	assert.Error(t, err)

	_, err = MACD([]float64{1, 2}, 26, 12, 9)
	assert.Error(t, err, "fast span must be shorter than slow span")
}
