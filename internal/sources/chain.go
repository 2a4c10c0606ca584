package sources

import (
	"context"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/models"
)

// Chain walks an ordered adapter list (primary free, secondary free,
// paid fallback) and returns the first non-empty page, per spec.md
// §4.1's fixed preference order. It accumulates every attempt for the
// orchestrator's paid-credit accounting.
type Chain struct {
	Adapters []Adapter
}

func NewChain(adapters ...Adapter) *Chain {
	return &Chain{Adapters: adapters}
}

// Result is one house's fetch outcome: the page (if any) plus the full
// attempts trace across the chain.
type Result struct {
	House    string
	Body     []byte
	Attempts []models.FetchAttempt
	Err      error
}

func (c *Chain) Fetch(ctx context.Context, house string, date time.Time) Result {
	res := Result{House: house}
	for _, adapter := range c.Adapters {
		body, attempt, err := adapter.Fetch(ctx, house, date)
		res.Attempts = append(res.Attempts, attempt)
		if err == nil && len(body) > 0 {
			res.Body = body
			return res
		}
	}
	res.Err = ErrUnavailable
	return res
}

// FetchAllSequential walks houses one at a time, separated by delay
// between each pair. This is the degraded-mode fallback named in §5:
// operators flip to it when the target sites start rate-limiting the
// worker pool's concurrent requests, trading throughput for a gentler
// request rate.
func (c *Chain) FetchAllSequential(ctx context.Context, houses []string, date time.Time, delay time.Duration) <-chan Result {
	out := make(chan Result)
	go func() {
		defer close(out)
		for i, h := range houses {
			select {
			case out <- c.Fetch(ctx, h, date):
			case <-ctx.Done():
				return
			}
			if i < len(houses)-1 && delay > 0 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// FetchAll fans the chain out across houses behind a bounded worker
// pool, per §5's "bounded worker pool (size = number of distinct houses,
// capped at 8)". Supplemented from original_source/'s v4 scraper, which
// pipelines per-house fetch+parse rather than waiting on a global
// barrier — FetchAll returns a channel so the caller can parse/upsert
// each house's result as soon as it lands, instead of collecting a slice.
func (c *Chain) FetchAll(ctx context.Context, houses []string, date time.Time) <-chan Result {
	const maxWorkers = 8
	workers := len(houses)
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string)
	out := make(chan Result)

	go func() {
		defer close(jobs)
		for _, h := range houses {
			select {
			case jobs <- h:
			case <-ctx.Done():
				return
			}
		}
	}()

	done := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for h := range jobs {
				out <- c.Fetch(ctx, h, date)
			}
		}()
	}

	go func() {
		for i := 0; i < workers; i++ {
			<-done
		}
		close(out)
	}()

	return out
}
