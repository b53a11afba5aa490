package collector

import (
	"context"
	"errors"

	"SwingScreener/internal/model"
)

// ErrUnavailable marks market data that could not be produced: network
// failure, unknown ticker, empty result. Callers skip the instrument and
// continue the scan.
var ErrUnavailable = errors.New("market data unavailable")

// Fetcher retrieves daily bar history for one instrument, oldest bar first.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
