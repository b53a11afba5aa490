package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"SwingScreener/internal/collector"
	"SwingScreener/internal/config"
	"SwingScreener/internal/logger"
	"SwingScreener/internal/report"
	"SwingScreener/internal/scheduler"
	"SwingScreener/internal/screener"
)

func main() {
	cmd := &cli.Command{
		Name:  "screener",
		Usage: "Screen a stock watchlist for swing-trading setups",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration file",
				Value:   "configs/config.yaml",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Keep running and scan on the configured cron schedule",
			},
			&cli.BoolFlag{
				Name:  "mock",
				Usage: "Use synthetic market data instead of a live source",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	log, err := logger.New()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	fetcher, closeFetcher, err := buildFetcher(cfg, cmd.Bool("mock"), log)
	if err != nil {
		return err
	}
	if closeFetcher != nil {
		defer closeFetcher()
	}
	log.Info("data source ready", zap.String("fetcher", fetcher.Name()))

	scr := screener.New(fetcher, screener.Options{
		Periods:      cfg.Periods(),
		LookbackDays: cfg.Scan.LookbackDays,
		RequestDelay: cfg.RequestDelay(),
	}, log)

	reporters := []report.Reporter{report.NewConsoleReporter(os.Stdout, cfg.Scan.StrongScore)}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		reporters = append(reporters,
			report.NewTelegramReporter(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Scan.StrongScore, cfg.Proxy))
	}

	if !cmd.Bool("watch") {
		rep, runErr := scr.Run(ctx, cfg.Tickers)
		for _, r := range reporters {
			if err := r.Report(rep); err != nil {
				log.Error("report failed", zap.Error(err))
			}
		}
		return runErr
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := scheduler.New(runCtx, scr, cfg.Tickers, reporters, log)
	if err := sched.Register(cfg.Scan.Cron); err != nil {
		return fmt.Errorf("register scan schedule: %w", err)
	}
	sched.Start()
	defer sched.Stop()
	log.Info("watching", zap.String("cron", cfg.Scan.Cron))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received")
	cancel()
	return nil
}

func buildFetcher(cfg *config.Config, mock bool, log *logger.Logger) (collector.Fetcher, func() error, error) {
	if mock {
		return &collector.MockFetcher{}, nil, nil
	}

	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}

	if cfg.Database.CachePath == "" {
		return fetcher, nil, nil
	}
	cache, err := collector.NewBarCache(cfg.Database.CachePath, fetcher, log)
	if err != nil {
		return nil, nil, fmt.Errorf("init bar cache: %w", err)
	}
	return cache, cache.Close, nil
}
