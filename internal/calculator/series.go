package calculator

import (
	"errors"

	"github.com/moznion/go-optional"
)

// RollingMean computes, for each index, the arithmetic mean of the window most
// recent values ending at that index. Indices with fewer than window preceding
// observations carry no value. The output is aligned with the input.
func RollingMean(values []float64, window int) ([]optional.Option[float64], error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	out := make([]optional.Option[float64], len(values))
	for i := range values {
		if i < window-1 {
			out[i] = optional.None[float64]()
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = optional.Some(sum / float64(window))
	}
	return out, nil
}

// ExponentialMean computes an exponentially weighted mean with decay
// alpha = 2/(span+1). The first output seeds from the first input value, so
// every index carries a value; early entries are numerically unstable until
// enough history has accumulated.
func ExponentialMean(values []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out, nil
	}
	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
