// Package notify implements the optional win-notification dispatch from
// spec.md §4.6.a.iv, adapted from the teacher's pkg/smsgateway.Gateway
// polymorphism: a shared interface with HTTP-webhook and mock
// implementations, selected by configuration rather than by modifying
// call sites.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/models"
)

// Notifier mirrors the teacher's Gateway interface shape, narrowed to
// this domain's single outbound event.
type Notifier interface {
	Notify(ctx context.Context, n models.WinNotification) error
}

// WebhookNotifier posts the notification as JSON to a fixed endpoint,
// the generic replacement for the teacher's MTNGateway/KodobeGateway
// pair (both were HTTP POST gateways differing only in URL/auth shape).
type WebhookNotifier struct {
	endpoint string
	client   *http.Client
}

func NewWebhookNotifier(endpoint string) *WebhookNotifier {
	return &WebhookNotifier{endpoint: endpoint, client: &http.Client{Timeout: 10 * time.Second}}
}

func (w *WebhookNotifier) Notify(ctx context.Context, n models.WinNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}

// MockNotifier is used when no endpoint is configured (mirrors the
// teacher's MockGateway), so local/dev runs never attempt real HTTP.
type MockNotifier struct {
	Sent []models.WinNotification
}

func NewMockNotifier() *MockNotifier { return &MockNotifier{} }

func (m *MockNotifier) Notify(_ context.Context, n models.WinNotification) error {
	m.Sent = append(m.Sent, n)
	return nil
}
