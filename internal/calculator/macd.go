package calculator

import "errors"

// MACDSeries holds the three aligned output series of a MACD computation.
type MACDSeries struct {
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes the Moving Average Convergence Divergence over a close-price
// series: the difference between a fast and a slow exponential mean, a signal
// line smoothing that difference, and their histogram. All three series are
// aligned with the input and defined at every index.
func MACD(closes []float64, fast, slow, signal int) (MACDSeries, error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return MACDSeries{}, errors.New("MACD spans must be positive")
	}
	if fast >= slow {
		return MACDSeries{}, errors.New("fast span must be shorter than slow span")
	}

	emaFast, err := ExponentialMean(closes, fast)
	if err != nil {
		return MACDSeries{}, err
	}
	emaSlow, err := ExponentialMean(closes, slow)
	if err != nil {
		return MACDSeries{}, err
	}

	macd := make([]float64, len(closes))
	for i := range closes {
		macd[i] = emaFast[i] - emaSlow[i]
	}

	signalLine, err := ExponentialMean(macd, signal)
	if err != nil {
		return MACDSeries{}, err
	}

	histogram := make([]float64, len(closes))
	for i := range closes {
		histogram[i] = macd[i] - signalLine[i]
	}

	return MACDSeries{MACD: macd, Signal: signalLine, Histogram: histogram}, nil
}
