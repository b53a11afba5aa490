package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"SwingScreener/internal/model"
	"SwingScreener/internal/screener"
)

// TelegramReporter sends a condensed scan summary via the Telegram Bot API.
type TelegramReporter struct {
	BotToken    string
	ChatID      string
	StrongScore int
	Client      *http.Client
}

// NewTelegramReporter creates a reporter with optional proxy support.
func NewTelegramReporter(botToken, chatID string, strongScore int, proxyURL string) *TelegramReporter {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramReporter{
		BotToken:    botToken,
		ChatID:      chatID,
		StrongScore: strongScore,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (t *TelegramReporter) Report(report *model.ScanReport) error {
	return t.send(formatTelegram(report, t.StrongScore))
}

// formatTelegram renders a compact HTML summary: the ranked list plus the
// strong candidates.
func formatTelegram(report *model.ScanReport, strongScore int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Swing Screener</b> | %s\n\n", report.ScanTime.Format("2006-01-02")))
	for _, r := range report.Results {
		b.WriteString(fmt.Sprintf("%s %s %d/%d (RSI %.1f, price %.2f)\n",
			Stars(r.Score), r.Ticker, r.Score, screener.MaxScore, r.Snapshot.RSI, r.Snapshot.Price))
	}
	if len(report.FailedTickers) > 0 {
		b.WriteString(fmt.Sprintf("\n⚠️ Failed: %s\n", strings.Join(report.FailedTickers, ", ")))
	}

	var strong []string
	for _, r := range report.Results {
		if r.Score >= strongScore {
			strong = append(strong, r.Ticker)
		}
	}
	if len(strong) > 0 {
		b.WriteString(fmt.Sprintf("\n🎯 <b>Strong candidates:</b> %s\n", strings.Join(strong, ", ")))
	}

	return b.String()
}

func (t *TelegramReporter) send(text string) error {
	apiURL := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.BotToken)
	payload := map[string]string{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	resp, err := t.Client.Post(apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
