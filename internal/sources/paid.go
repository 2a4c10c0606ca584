package sources

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/bridgetunes/lottery-settlement/pkg/renderapi"
	"github.com/cenkalti/backoff/v4"
)

// PaidAdapter is the last-resort paid rendering fetch, tried only after
// both free sources are exhausted. Retries transient/429 failures with
// bounded exponential backoff (resolves the Open Question on the
// paid-fetch retry schedule: initial 500ms, x2 multiplier, 8s cap,
// 30s max elapsed — see DESIGN.md).
type PaidAdapter struct {
	client     *renderapi.Client
	urlPattern string // fmt pattern taking (house, YYYY-MM-DD)
	credits    *int   // side-channel counter the caller inspects after the walk
}

func NewPaidAdapter(client *renderapi.Client, urlPattern string, credits *int) *PaidAdapter {
	return &PaidAdapter{client: client, urlPattern: urlPattern, credits: credits}
}

func (a *PaidAdapter) Name() string { return "paid_render" }

func (a *PaidAdapter) Fetch(ctx context.Context, house string, date time.Time) ([]byte, models.FetchAttempt, error) {
	started := time.Now()
	attempt := models.FetchAttempt{Source: a.Name(), StartedAt: started}
	targetURL := fmt.Sprintf(a.urlPattern, house, date.Format("2006-01-02"))

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.Multiplier = 2.0
	bo.MaxInterval = 8 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	var body []byte
	op := func() error {
		b, err := a.client.Render(ctx, targetURL)
		if err != nil {
			if errors.Is(err, renderapi.ErrTooManyRequests) {
				return err // retryable
			}
			return backoff.Permanent(err)
		}
		body = b
		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(bo, ctx))
	attempt.Duration = time.Since(started)

	if a.credits != nil {
		*a.credits++
	}

	if err != nil {
		if errors.Is(err, renderapi.ErrTooManyRequests) {
			attempt.Outcome = "rate_limited"
		} else {
			attempt.Outcome = "error"
		}
		return nil, attempt, ErrUnavailable
	}
	if len(body) == 0 {
		attempt.Outcome = "empty"
		return nil, attempt, ErrUnavailable
	}
	attempt.Outcome = "ok"
	return body, attempt, nil
}
