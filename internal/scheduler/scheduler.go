// Package scheduler drives the two recurring jobs (scrape-and-settle,
// reconciliation) with github.com/robfig/cron/v3, grounded on the
// r3e-network-neo-miniapps-platform example's cron-driven backend.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bridgetunes/lottery-settlement/internal/scrape"
	"github.com/bridgetunes/lottery-settlement/internal/settlement"
)

// Config holds the cron specs and house/timezone wiring a Scheduler
// needs. Specs are standard 5-field cron expressions evaluated in
// Location.
type Config struct {
	ScrapeSettleSpec   string // e.g. "0,30 1,7-23 * * *"
	ReconciliationSpec string
	Location           *time.Location
	Houses             []string
}

// Reconciler delegates payment reconciliation to an external endpoint;
// out of the settlement core per spec.md §6.
type Reconciler interface {
	Reconcile(ctx context.Context) error
}

type Scheduler struct {
	cfg         Config
	cron        *cron.Cron
	scrapeJob   *scrape.Job
	orchestrate *settlement.Orchestrator
	planner     *SkipPlanner
	reconciler  Reconciler
	logger      *slog.Logger
}

func New(
	cfg Config,
	scrapeJob *scrape.Job,
	orchestrator *settlement.Orchestrator,
	planner *SkipPlanner,
	reconciler Reconciler,
	logger *slog.Logger,
) *Scheduler {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cfg:         cfg,
		cron:        cron.New(cron.WithLocation(loc)),
		scrapeJob:   scrapeJob,
		orchestrate: orchestrator,
		planner:     planner,
		reconciler:  reconciler,
		logger:      logger,
	}
}

// Start registers both recurring jobs and begins the cron scheduler's
// background goroutine. Callers should call Stop on shutdown.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.ScrapeSettleSpec, func() {
		s.runScrapeAndSettle(ctx)
	}); err != nil {
		return err
	}

	if s.reconciler != nil {
		if _, err := s.cron.AddFunc(s.cfg.ReconciliationSpec, func() {
			if err := s.reconciler.Reconcile(ctx); err != nil {
				s.logger.Error("scheduler: reconciliation failed", "err", err)
			}
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// runScrapeAndSettle drives one scrape-and-settle cycle for both
// "today" and "yesterday" (spec.md §4.6's invocation rule): yesterday's
// bets can still be pending on a late result or a missed run.
func (s *Scheduler) runScrapeAndSettle(ctx context.Context) {
	now := time.Now().In(s.location())
	for _, d := range []time.Time{now, now.AddDate(0, 0, -1)} {
		date := d.Format("2006-01-02")
		s.runOneDate(ctx, d, date)
	}
}

func (s *Scheduler) runOneDate(ctx context.Context, day time.Time, date string) {
	existing, err := s.orchestrate.Drawings.ListDrawings(ctx, date)
	if err != nil {
		s.logger.Error("scheduler: list drawings failed, scraping all houses", "date", date, "err", err)
		existing = nil
	}

	houses := s.cfg.Houses
	if s.planner != nil {
		houses = s.planner.NextHouses(s.cfg.Houses, existing)
	}
	if len(houses) > 0 {
		s.scrapeJob.Run(ctx, houses, day)
	} else {
		s.logger.Info("scheduler: all houses already complete for date, skipping scrape", "date", date)
	}

	if err := s.orchestrate.Run(ctx, date); err != nil {
		s.logger.Error("scheduler: settlement run failed", "date", date, "err", err)
	}
}

func (s *Scheduler) location() *time.Location {
	if s.cfg.Location != nil {
		return s.cfg.Location
	}
	return time.UTC
}
