// Package sources implements the Source Adapters (C1): a small ordered
// list of fetchers with a uniform interface, walked until one yields a
// non-empty page. Adapters never parse; they only answer "for (house,
// date), give me the raw page."
//
// Grounded on the teacher's pkg/mtnapi.Client shape: a struct holding a
// base URL and a shared *http.Client with a fixed timeout, plus a
// Mock-mode switch for environments with no network access.
package sources

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/models"
)

// ErrUnavailable is the sentinel for "this source had nothing for us",
// distinct from a transport-level error.
var ErrUnavailable = errors.New("sources: unavailable")

// Adapter answers one question: for (house, date), give me the raw page.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, house string, date time.Time) ([]byte, models.FetchAttempt, error)
}

// sharedClient is the single HTTP client every free-source adapter uses,
// with the 30s per-request timeout spec.md §4.1 mandates.
var sharedClient = &http.Client{Timeout: 30 * time.Second}

func newSharedClient() *http.Client {
	return sharedClient
}

func doGet(ctx context.Context, client *http.Client, name, url string) ([]byte, models.FetchAttempt, error) {
	started := time.Now()
	attempt := models.FetchAttempt{Source: name, StartedAt: started}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		attempt.Outcome = "error"
		attempt.Duration = time.Since(started)
		return nil, attempt, err
	}

	resp, err := client.Do(req)
	if err != nil {
		attempt.Outcome = "error"
		attempt.Duration = time.Since(started)
		return nil, attempt, err
	}
	defer resp.Body.Close()

	attempt.StatusCode = resp.StatusCode
	attempt.Duration = time.Since(started)

	if resp.StatusCode == http.StatusTooManyRequests {
		attempt.Outcome = "rate_limited"
		return nil, attempt, ErrUnavailable
	}
	if resp.StatusCode >= 400 {
		attempt.Outcome = "error"
		return nil, attempt, ErrUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		attempt.Outcome = "error"
		return nil, attempt, err
	}
	if len(body) == 0 {
		attempt.Outcome = "empty"
		return nil, attempt, ErrUnavailable
	}

	attempt.Outcome = "ok"
	return body, attempt, nil
}
