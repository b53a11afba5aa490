package screener

import (
	"fmt"

	"github.com/moznion/go-optional"

	"SwingScreener/internal/model"
)

// MaxScore is the top of the screening scale. The RSI zone rule can award two
// points, so the raw criterion sum is clamped to this scale.
const MaxScore = 5

// CriterionID identifies one screening rule.
type CriterionID string

const (
	CriterionRSIZone   CriterionID = "rsi_zone"
	CriterionHistogram CriterionID = "macd_histogram"
	CriterionMACDCross CriterionID = "macd_above_signal"
	CriterionSMA20     CriterionID = "price_above_sma20"
	CriterionSMA50     CriterionID = "price_above_sma50"
)

// CriterionResult records the outcome of a single screening rule.
type CriterionResult struct {
	ID     CriterionID
	Passed bool
	Points int
	Reason string
}

// EvaluateCriteria applies the five swing-trading rules to a snapshot, in
// fixed order. A passing rule contributes one point and one reason string; the
// RSI rule awards a second point inside the tighter 40-60 band, recording only
// the more specific reason. Rules whose comparator is absent do not pass.
func EvaluateCriteria(snap model.IndicatorSnapshot) []CriterionResult {
	results := make([]CriterionResult, 0, 5)

	rsiZone := CriterionResult{ID: CriterionRSIZone}
	if snap.RSI > 30 && snap.RSI < 70 {
		rsiZone.Passed = true
		if snap.RSI > 40 && snap.RSI < 60 {
			rsiZone.Points = 2
			rsiZone.Reason = fmt.Sprintf("RSI %.1f in neutral zone (40-60)", snap.RSI)
		} else {
			rsiZone.Points = 1
			rsiZone.Reason = fmt.Sprintf("RSI %.1f in trading zone (30-70)", snap.RSI)
		}
	}
	results = append(results, rsiZone)

	results = append(results, boolCriterion(CriterionHistogram,
		snap.Histogram > 0, "MACD histogram positive (bullish)"))

	results = append(results, boolCriterion(CriterionMACDCross,
		snap.MACD > snap.Signal, "MACD above signal line"))

	results = append(results, boolCriterion(CriterionSMA20,
		priceAbove(snap.Price, snap.SMA20), "Price above 20-day SMA (short-term uptrend)"))

	results = append(results, boolCriterion(CriterionSMA50,
		priceAbove(snap.Price, snap.SMA50), "Price above 50-day SMA (medium-term uptrend)"))

	return results
}

// Summarize folds criterion results into a total score on the 0-5 scale and
// the ordered reason strings, insertion order preserved.
func Summarize(results []CriterionResult) (int, []string) {
	score := 0
	var reasons []string
	for _, r := range results {
		if !r.Passed {
			continue
		}
		score += r.Points
		reasons = append(reasons, r.Reason)
	}
	if score > MaxScore {
		score = MaxScore
	}
	return score, reasons
}

// Screen applies the full rule set to a snapshot.
func Screen(ticker string, snap model.IndicatorSnapshot) model.ScreeningResult {
	score, reasons := Summarize(EvaluateCriteria(snap))
	return model.ScreeningResult{
		Ticker:   ticker,
		Snapshot: snap,
		Score:    score,
		Reasons:  reasons,
	}
}

func boolCriterion(id CriterionID, passed bool, reason string) CriterionResult {
	res := CriterionResult{ID: id, Passed: passed}
	if passed {
		res.Points = 1
		res.Reason = reason
	}
	return res
}

// priceAbove fails closed: an absent moving average never satisfies the rule.
func priceAbove(price float64, sma optional.Option[float64]) bool {
	v, err := sma.Take()
	return err == nil && price > v
}
