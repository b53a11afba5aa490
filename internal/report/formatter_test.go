package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SwingScreener/internal/model"
)

func sampleReport() *model.ScanReport {
	return &model.ScanReport{
		Results: []model.ScreeningResult{
			{
				Ticker: "BBCA.JK",
				Snapshot: model.IndicatorSnapshot{
					Price:     9100,
					RSI:       52.3,
					Histogram: 1.2345,
					SMA20:     optional.Some(9000.0),
				},
				Score: 5,
				Reasons: []string{
					"RSI 52.3 in neutral zone (40-60)",
					"MACD histogram positive (bullish)",
				},
			},
			{
				Ticker:   "UNVR.JK",
				Snapshot: model.IndicatorSnapshot{Price: 2500, RSI: 80},
				Score:    2,
				Reasons:  []string{"MACD above signal line"},
			},
		},
		FailedTickers: []string{"GGRM.JK"},
		ScanTime:      time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC),
	}
}

func TestFormatReportSections(t *testing.T) {
	out := FormatReport(sampleReport(), 4)

	assert.Contains(t, out, "SWING TRADING SCREENER")
	assert.Contains(t, out, "Scan Date: 2026-08-28 18:00:00")
	assert.Contains(t, out, "Ticker: BBCA.JK")
	assert.Contains(t, out, "Score: 5/5 ★★★★★")
	assert.Contains(t, out, "Score: 2/5 ★★☆☆☆")
	assert.Contains(t, out, "RSI 52.3 in neutral zone (40-60)")
	assert.Contains(t, out, "Failed to screen: GGRM.JK")
	assert.Contains(t, out, "Total stocks screened: 2")
	assert.Contains(t, out, "DISCLAIMER")

	// Only BBCA reaches the strong-candidate threshold.
	assert.Contains(t, out, "* BBCA.JK (Score: 5/5)")
	assert.NotContains(t, out, "* UNVR.JK (Score:")
}

func TestStars(t *testing.T) {
	assert.Equal(t, "☆☆☆☆☆", Stars(0))
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "★★★★★", Stars(5))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
	assert.Equal(t, "★★★★★", Stars(9))
}

func TestConsoleReporterWrites(t *testing.T) {
	var buf bytes.Buffer
	rep := NewConsoleReporter(&buf, 4)

	require.NoError(t, rep.Report(sampleReport()))
	assert.Contains(t, buf.String(), "Ticker: BBCA.JK")
}

func TestFormatTelegramSummary(t *testing.T) {
	out := formatTelegram(sampleReport(), 4)

	assert.Contains(t, out, "BBCA.JK 5/5")
	assert.Contains(t, out, "UNVR.JK 2/5")
	assert.Contains(t, out, "Failed: GGRM.JK")
	assert.Contains(t, out, "Strong candidates:</b> BBCA.JK")
}
