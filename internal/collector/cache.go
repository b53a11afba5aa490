package collector

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"SwingScreener/internal/logger"
	"SwingScreener/internal/model"
)

// BarCache is a read-through SQLite cache around a Fetcher. Bars fetched
// earlier the same day are served locally, so repeated scans do not hit the
// upstream rate limit. Only raw bars are stored, never scores.
type BarCache struct {
	db       *sql.DB
	upstream Fetcher
	log      *logger.Logger
	mu       sync.Mutex
}

// NewBarCache opens (or creates) the cache database and runs migrations.
func NewBarCache(dbPath string, upstream Fetcher, log *logger.Logger) (*BarCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so a scan can read while another process inspects the cache.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &BarCache{db: db, upstream: upstream, log: log}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("bar cache opened", zap.String("path", dbPath))
	return c, nil
}

func (c *BarCache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_bars (
			symbol TEXT    NOT NULL,
			ts     INTEGER NOT NULL,
			open   REAL,
			high   REAL,
			low    REAL,
			close  REAL,
			volume REAL,
			PRIMARY KEY (symbol, ts)
		)`,
		`CREATE TABLE IF NOT EXISTS fetch_log (
			symbol     TEXT PRIMARY KEY,
			fetched_at INTEGER NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:30], err)
		}
	}
	return nil
}

func (c *BarCache) Name() string { return c.upstream.Name() + "+cache" }

func (c *BarCache) FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fetchedToday(ctx, symbol) {
		bars, err := c.load(ctx, symbol, days)
		if err == nil && len(bars) > 0 {
			c.log.Debug("cache hit", zap.String("symbol", symbol), zap.Int("bars", len(bars)))
			return bars, nil
		}
	}

	bars, err := c.upstream.FetchDailyBars(ctx, symbol, days)
	if err != nil {
		return nil, err
	}
	if err := c.store(ctx, symbol, bars); err != nil {
		c.log.Warn("cache store failed", zap.String("symbol", symbol), zap.Error(err))
	}
	return bars, nil
}

// Close closes the underlying database.
func (c *BarCache) Close() error {
	return c.db.Close()
}

func (c *BarCache) fetchedToday(ctx context.Context, symbol string) bool {
	var fetchedAt int64
	err := c.db.QueryRowContext(ctx,
		`SELECT fetched_at FROM fetch_log WHERE symbol = ?`, symbol).Scan(&fetchedAt)
	if err != nil {
		return false
	}
	now := time.Now()
	t := time.Unix(fetchedAt, 0)
	return t.Year() == now.Year() && t.YearDay() == now.YearDay()
}

func (c *BarCache) load(ctx context.Context, symbol string, days int) ([]model.OHLCV, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT ts, open, high, low, close, volume FROM daily_bars WHERE symbol = ? ORDER BY ts`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bars []model.OHLCV
	for rows.Next() {
		var ts int64
		var b model.OHLCV
		if err := rows.Scan(&ts, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, err
		}
		b.Time = time.Unix(ts, 0)
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

func (c *BarCache) store(ctx context.Context, symbol string, bars []model.OHLCV) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, b := range bars {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO daily_bars (symbol, ts, open, high, low, close, volume)
			 VALUES (?,?,?,?,?,?,?)`,
			symbol, b.Time.Unix(), b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO fetch_log (symbol, fetched_at) VALUES (?,?)`,
		symbol, time.Now().Unix()); err != nil {
		return err
	}
	return tx.Commit()
}
