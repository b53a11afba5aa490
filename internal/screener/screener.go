package screener

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"SwingScreener/internal/calculator"
	"SwingScreener/internal/collector"
	"SwingScreener/internal/logger"
	"SwingScreener/internal/model"
)

// Options configures a screening run.
type Options struct {
	Periods      calculator.Periods
	LookbackDays int
	RequestDelay time.Duration
}

// Screener runs the full screening pipeline: fetch bars, compute indicators,
// score, rank. Instruments are processed strictly sequentially to respect the
// data source's rate limits.
type Screener struct {
	fetcher collector.Fetcher
	opts    Options
	log     *logger.Logger
}

// New creates a Screener.
func New(fetcher collector.Fetcher, opts Options, log *logger.Logger) *Screener {
	return &Screener{fetcher: fetcher, opts: opts, log: log}
}

// Run screens every ticker in order and returns the ranked report. A ticker
// whose data is unavailable or too short is counted as failed and skipped; the
// run continues. Cancelling the context between instruments returns the
// partial report along with the context error, so already-collected results
// stay reportable.
func (s *Screener) Run(ctx context.Context, tickers []string) (*model.ScanReport, error) {
	report := &model.ScanReport{ScanTime: time.Now()}

	for i, ticker := range tickers {
		if i > 0 && s.opts.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				rankResults(report.Results)
				return report, ctx.Err()
			case <-time.After(s.opts.RequestDelay):
			}
		} else if err := ctx.Err(); err != nil {
			rankResults(report.Results)
			return report, err
		}

		s.log.Info("screening", zap.String("ticker", ticker), zap.Int("index", i+1), zap.Int("total", len(tickers)))

		bars, err := s.fetcher.FetchDailyBars(ctx, ticker, s.opts.LookbackDays)
		if err != nil || len(bars) == 0 {
			s.log.Warn("fetch failed", zap.String("ticker", ticker), zap.Error(err))
			report.FailedTickers = append(report.FailedTickers, ticker)
			continue
		}

		snap, err := calculator.BuildSnapshot(ticker, bars, s.opts.Periods)
		if err != nil {
			if calculator.IsInsufficientData(err) {
				s.log.Warn("not enough history", zap.String("ticker", ticker), zap.Error(err))
			} else {
				s.log.Warn("indicator computation failed", zap.String("ticker", ticker), zap.Error(err))
			}
			report.FailedTickers = append(report.FailedTickers, ticker)
			continue
		}

		report.Results = append(report.Results, Screen(ticker, snap))
	}

	rankResults(report.Results)
	return report, nil
}

// rankResults orders by score descending; equal scores keep their original
// relative order.
func rankResults(results []model.ScreeningResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
