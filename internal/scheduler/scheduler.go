package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"SwingScreener/internal/logger"
	"SwingScreener/internal/report"
	"SwingScreener/internal/screener"
)

// Scheduler runs the screening pass on a cron schedule and hands every report
// to the configured reporters.
type Scheduler struct {
	cron      *cron.Cron
	screener  *screener.Screener
	tickers   []string
	reporters []report.Reporter
	log       *logger.Logger
	ctx       context.Context
}

// New creates a Scheduler. The context bounds every scheduled scan; cancelling
// it aborts an in-flight pass between instruments.
func New(ctx context.Context, scr *screener.Screener, tickers []string, reporters []report.Reporter, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		screener:  scr,
		tickers:   tickers,
		reporters: reporters,
		log:       log,
		ctx:       ctx,
	}
}

// Register adds the scan task under the given cron expression (with seconds).
func (s *Scheduler) Register(spec string) error {
	_, err := s.cron.AddFunc(spec, s.scanTask)
	return err
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

// RunNow executes the scan task immediately.
func (s *Scheduler) RunNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	s.log.Info("running scheduled scan", zap.Int("tickers", len(s.tickers)))

	rep, err := s.screener.Run(s.ctx, s.tickers)
	if err != nil {
		// Partial results from an aborted pass are still worth reporting.
		s.log.Warn("scan interrupted", zap.Error(err), zap.Int("results", len(rep.Results)))
	}
	if len(rep.Results) == 0 && len(rep.FailedTickers) == 0 {
		return
	}

	for _, r := range s.reporters {
		if err := r.Report(rep); err != nil {
			s.log.Error("report failed", zap.Error(err))
		}
	}
}
