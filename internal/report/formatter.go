package report

import (
	"fmt"
	"strings"

	"SwingScreener/internal/model"
	"SwingScreener/internal/screener"
)

const divider = "================================================================================"

// FormatReport renders a full scan report as plain text: ranked results with a
// star score display, per-result reasons, the failed tickers, and the strong
// candidates at or above strongScore.
func FormatReport(report *model.ScanReport, strongScore int) string {
	var b strings.Builder

	b.WriteString(divider + "\n")
	b.WriteString("SWING TRADING SCREENER\n")
	b.WriteString(divider + "\n")
	b.WriteString(fmt.Sprintf("Scan Date: %s\n", report.ScanTime.Format("2006-01-02 15:04:05")))
	b.WriteString(divider + "\n\n")

	for _, r := range report.Results {
		b.WriteString(formatResult(r))
		b.WriteString(strings.Repeat("-", 80) + "\n")
	}

	b.WriteString(fmt.Sprintf("\nTotal stocks screened: %d\n", len(report.Results)))
	if len(report.FailedTickers) > 0 {
		b.WriteString(fmt.Sprintf("Failed to screen: %s\n", strings.Join(report.FailedTickers, ", ")))
	}

	b.WriteString(fmt.Sprintf("Strong candidates (score >= %d):\n", strongScore))
	for _, r := range report.Results {
		if r.Score >= strongScore {
			b.WriteString(fmt.Sprintf("  * %s (Score: %d/%d)\n", r.Ticker, r.Score, screener.MaxScore))
		}
	}

	b.WriteString("\n" + divider + "\n")
	b.WriteString("DISCLAIMER: This screener is for educational purposes only.\n")
	b.WriteString("Always do your own research and consult a financial advisor before trading.\n")
	b.WriteString(divider + "\n")

	return b.String()
}

func formatResult(r model.ScreeningResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Ticker: %s\n", r.Ticker))
	b.WriteString(fmt.Sprintf("Price: %.2f | Score: %d/%d %s\n", r.Snapshot.Price, r.Score, screener.MaxScore, Stars(r.Score)))
	b.WriteString(fmt.Sprintf("RSI: %.1f | MACD Histogram: %.4f\n", r.Snapshot.RSI, r.Snapshot.Histogram))
	b.WriteString("Reasons:\n")
	for _, reason := range r.Reasons {
		b.WriteString(fmt.Sprintf("  * %s\n", reason))
	}
	return b.String()
}

// Stars renders a score as filled and hollow stars on the screening scale.
func Stars(score int) string {
	if score < 0 {
		score = 0
	}
	if score > screener.MaxScore {
		score = screener.MaxScore
	}
	return strings.Repeat("★", score) + strings.Repeat("☆", screener.MaxScore-score)
}
