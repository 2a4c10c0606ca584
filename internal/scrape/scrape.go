// Package scrape wires the Source Adapters (C1), Drawing Parser (C2)
// and Result Store Gateway (C3) into a single per-house fetch-parse-
// upsert step, the unit of work the scheduler fans out across houses.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/bridgetunes/lottery-settlement/internal/parser"
	"github.com/bridgetunes/lottery-settlement/internal/sources"
	"github.com/bridgetunes/lottery-settlement/internal/store"
)

type alerter interface {
	Report(ctx context.Context, title, message, source string, cause error)
}

// Job drives one scrape-and-upsert run across a set of houses.
type Job struct {
	Chain    *sources.Chain
	Drawings store.DrawingStore
	Alert    alerter
	Logger   *slog.Logger

	// Sequential switches Run to the degraded, rate-limit-friendlier
	// fallback path (§5): houses are fetched one at a time, separated
	// by InterHouseDelay, instead of behind the bounded worker pool.
	Sequential      bool
	InterHouseDelay time.Duration
}

// Result is one house's outcome, returned to Run's caller; Attempts
// carries the per-source fetch trace used for paid-credit accounting.
type Result struct {
	House     string
	Fetched   int
	Upserted  int
	Attempts  []models.FetchAttempt
	FetchErr  error
	UpsertErr error
}

// Run fetches and upserts drawings for every house in houses, for the
// given date, pipelining per-house work rather than waiting on a global
// barrier (spec.md §5's bounded-worker-pool concurrency model).
func (j *Job) Run(ctx context.Context, houses []string, date time.Time) []Result {
	var fetches <-chan sources.Result
	if j.Sequential {
		fetches = j.Chain.FetchAllSequential(ctx, houses, date, j.InterHouseDelay)
	} else {
		fetches = j.Chain.FetchAll(ctx, houses, date)
	}

	results := make([]Result, 0, len(houses))
	for res := range fetches {
		results = append(results, j.handle(ctx, res, date.Format("2006-01-02")))
	}
	return results
}

func (j *Job) handle(ctx context.Context, fetch sources.Result, date string) Result {
	out := Result{House: fetch.House, Attempts: fetch.Attempts}

	if fetch.Err != nil {
		out.FetchErr = fetch.Err
		j.Logger.Warn("scrape: no source yielded a page", "house", fetch.House, "attempts", len(fetch.Attempts))
		return out
	}

	drawings, err := parser.Parse(fetch.House, fetch.Body)
	if err != nil {
		out.FetchErr = fmt.Errorf("scrape: parse failed for %s: %w", fetch.House, err)
		j.Logger.Error("scrape: parse failed", "house", fetch.House, "err", err)
		return out
	}
	out.Fetched = len(drawings)

	for _, d := range drawings {
		if d.Date == "" {
			d.Date = date
		}
		if err := j.Drawings.UpsertDrawing(ctx, d); err != nil {
			out.UpsertErr = err
			j.Logger.Error("scrape: upsert failed", "house", fetch.House, "date", d.Date, "time", d.Time, "err", err)
			j.Alert.Report(ctx, "scrape: drawing upsert failed",
				fmt.Sprintf("house=%s date=%s time=%s: %v", fetch.House, d.Date, d.Time, err),
				"scrape_job", err)
			continue
		}
		out.Upserted++
	}
	return out
}
