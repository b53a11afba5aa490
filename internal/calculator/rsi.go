package calculator

import (
	"errors"

	"github.com/moznion/go-optional"
)

// RSI computes the Relative Strength Index over a close-price series using
// rolling-mean smoothing of clamped day-over-day changes. The first change is
// counted as zero gain and zero loss, so values are defined from index
// period-1 onward.
//
// Boundary conventions: a zero average loss saturates RSI to 100; when both
// averages are zero (flat prices) RSI is defined as 50.
func RSI(closes []float64, period int) ([]optional.Option[float64], error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}

	n := len(closes)
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	avgGain, err := RollingMean(gains, period)
	if err != nil {
		return nil, err
	}
	avgLoss, err := RollingMean(losses, period)
	if err != nil {
		return nil, err
	}

	out := make([]optional.Option[float64], n)
	for i := 0; i < n; i++ {
		gain, gerr := avgGain[i].Take()
		loss, lerr := avgLoss[i].Take()
		if gerr != nil || lerr != nil {
			out[i] = optional.None[float64]()
			continue
		}
		switch {
		case gain == 0 && loss == 0:
			out[i] = optional.Some(50.0)
		case loss == 0:
			out[i] = optional.Some(100.0)
		default:
			rs := gain / loss
			out[i] = optional.Some(100.0 - 100.0/(1.0+rs))
		}
	}
	return out, nil
}
