// Package alert posts uncaught-exception alerts to an operator webhook,
// adapted from the teacher's pkg/smsgateway HTTP-gateway shape (a struct
// holding a base URL and a shared *http.Client, with a mock/absent mode).
package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

type payload struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Source    string `json:"source"`
	Exception string `json:"exception,omitempty"`
}

// Dispatcher posts alert payloads to SCRAPER_ALERT_WEBHOOK_URL. When no
// URL is configured it logs the alert through its injected slog logger
// instead (the commands build that logger on stdout, not stderr).
type Dispatcher struct {
	webhookURL string
	client     *http.Client
	logger     *slog.Logger
}

func New(webhookURL string, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Report posts {title, message, source, exception} to the configured
// webhook, per spec §6's alert contract. On any failure (including no
// webhook configured) it falls back to a structured log line on the
// injected logger so an alert is never silently dropped.
func (d *Dispatcher) Report(ctx context.Context, title, message, source string, cause error) {
	excText := ""
	if cause != nil {
		excText = cause.Error()
	}

	if d.webhookURL == "" {
		d.logger.Error("alert", "title", title, "message", message, "source", source, "exception", excText)
		return
	}

	body, err := json.Marshal(payload{Title: title, Message: message, Source: source, Exception: excText})
	if err != nil {
		d.logger.Error("alert: marshal failed", "err", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		d.logger.Error("alert: request build failed", "err", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Error("alert: webhook post failed", "err", err, "title", title, "source", source)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		d.logger.Error("alert: webhook rejected", "status", resp.StatusCode, "title", title, "source", source)
	}
}
