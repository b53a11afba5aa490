package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollingMeanMatchesNaiveAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}

	out, err := RollingMean(values, 3)
	require.NoError(t, err)
	require.Len(t, out, len(values))

	for i := 0; i < 2; i++ {
		assert.True(t, out[i].IsNone(), "index %d should carry no value", i)
	}
	want := []float64{2, 3, 4, 5}
	for i, w := range want {
		got, err := out[i+2].Take()
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
}

func TestRollingMeanWindowOneIsIdentity(t *testing.T) {
	values := []float64{3.5, -1, 0, 42}

	out, err := RollingMean(values, 1)
	require.NoError(t, err)

	for i, v := range values {
		got, err := out[i].Take()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestRollingMeanWindowLongerThanSeries(t *testing.T) {
	out, err := RollingMean([]float64{1, 2, 3}, 10)
	require.NoError(t, err)
	require.Len(t, out, 3)

	for i := range out {
		assert.True(t, out[i].IsNone())
	}
}

func TestRollingMeanRejectsBadWindow(t *testing.T) {
	_, err := RollingMean([]float64{1, 2}, 0)
	assert.Error(t, err)

	_, err = RollingMean([]float64{1, 2}, -3)
	assert.Error(t, err)
}

func TestExponentialMeanSeedsFromFirstValue(t *testing.T) {
	values := []float64{10, 11, 12}

	out, err := ExponentialMean(values, 9)
	require.NoError(t, err)
	require.Len(t, out, 3)

	alpha := 2.0 / 10.0
	assert.Equal(t, 10.0, out[0])
	want1 := alpha*11 + (1-alpha)*10
	assert.InDelta(t, want1, out[1], 1e-12)
	assert.InDelta(t, alpha*12+(1-alpha)*want1, out[2], 1e-12)
}

func TestExponentialMeanConstantSeriesStaysConstant(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = 7.25
	}

	out, err := ExponentialMean(values, 12)
	require.NoError(t, err)

	for i, v := range out {
		assert.InDelta(t, 7.25, v, 1e-12, "index %d", i)
	}
}

func TestExponentialMeanEmptyInput(t *testing.T) {
	out, err := ExponentialMean(nil, 9)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExponentialMeanRejectsBadSpan(t *testing.T) {
	_, err := ExponentialMean([]float64{1}, 0)
	assert.Error(t, err)
}
