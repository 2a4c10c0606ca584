// Command settlement wires the Source Adapters, Drawing Parser, Result
// Store Gateway, Lottery Identifier Resolver, Modality Evaluator and
// Settlement Orchestrator into the scheduler, then runs until signaled,
// following the teacher's cmd/api/main.go wiring shape generalized to a
// background job process instead of an HTTP server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/alert"
	"github.com/bridgetunes/lottery-settlement/internal/clock"
	"github.com/bridgetunes/lottery-settlement/internal/config"
	"github.com/bridgetunes/lottery-settlement/internal/notify"
	"github.com/bridgetunes/lottery-settlement/internal/resolver"
	"github.com/bridgetunes/lottery-settlement/internal/scheduler"
	"github.com/bridgetunes/lottery-settlement/internal/scrape"
	"github.com/bridgetunes/lottery-settlement/internal/seed"
	"github.com/bridgetunes/lottery-settlement/internal/settlement"
	"github.com/bridgetunes/lottery-settlement/internal/sources"
	storemongo "github.com/bridgetunes/lottery-settlement/internal/store/mongodb"
	"github.com/bridgetunes/lottery-settlement/pkg/mongodb"
	"github.com/bridgetunes/lottery-settlement/pkg/renderapi"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("settlement: config load failed", "err", err)
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warn("settlement: unknown timezone, defaulting to UTC", "timezone", cfg.Scheduler.Timezone, "err", err)
		loc = time.UTC
	}

	client, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		logger.Error("settlement: mongodb connect failed", "err", err)
		os.Exit(1)
	}
	db := client.Database(cfg.MongoDB.Database)

	alertDispatcher := alert.New(cfg.Alert.WebhookURL, logger)

	res := resolver.New()
	if tokens, err := seed.LoadLotteryTokens(cfg.Settlement.LotteryTokenCSV); err != nil {
		logger.Warn("settlement: lottery token overlay load failed, using canonical table only", "err", err)
	} else if len(tokens) > 0 {
		res.Load(tokens)
		logger.Info("settlement: loaded lottery token overlay", "count", len(tokens))
	}

	expected, err := seed.LoadExpectedDrawingCounts(cfg.Settlement.ExpectedCountCSV)
	if err != nil {
		logger.Warn("settlement: expected-drawing-count load failed, using canonical defaults", "err", err)
		expected = nil
	}
	if expected == nil {
		expected = resolver.DefaultExpectedDrawingCounts()
	}

	renderClient := renderapi.NewClient(cfg.Scrape.RenderAPIBaseURL, cfg.Scrape.RenderAPIKey, cfg.Scrape.MockRenderAPI)
	var paidCredits int
	chain := sources.NewChain(
		sources.NewTemplateAdapter("primary_free", "https://resultados.example/%s/%s"),
		sources.NewSlugAdapter("secondary_free", "https://loterias.example/%s/%s", map[string]string{}),
		sources.NewPaidAdapter(renderClient, cfg.Scrape.PaidSourceURL, &paidCredits),
	)

	drawingStore := storemongo.NewDrawingStore(db)
	betStore := storemongo.NewBetStore(db)
	ledgerStore := storemongo.NewLedgerStore(client.Raw(), db)
	oddsStore := storemongo.NewOddsStore(db)
	runStore := storemongo.NewRunStore(db)

	scrapeJob := &scrape.Job{
		Chain:           chain,
		Drawings:        drawingStore,
		Alert:           alertDispatcher,
		Logger:          logger,
		Sequential:      cfg.Scrape.Sequential,
		InterHouseDelay: cfg.Scrape.InterHouseDelay,
	}

	var notifier notify.Notifier
	if cfg.Settlement.NotificationURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Settlement.NotificationURL)
	} else {
		notifier = notify.NewMockNotifier()
	}

	orchestrator := &settlement.Orchestrator{
		Drawings: drawingStore,
		Bets:     betStore,
		Ledger:   ledgerStore,
		Odds:     oddsStore,
		Runs:     runStore,
		Resolver: res,
		Notifier: notifier,
		Alert:    alertDispatcher,
		Clock:    clock.Real{Location: loc},
		Location: loc,
		Logger:   logger,
		Budget:   cfg.Scheduler.SettlementBudget,
	}

	planner := &scheduler.SkipPlanner{Expected: expected}

	sched := scheduler.New(scheduler.Config{
		ScrapeSettleSpec:   cfg.Scheduler.ScrapeSettleSpec,
		ReconciliationSpec: cfg.Scheduler.ReconciliationSpec,
		Location:           loc,
		Houses:             cfg.Scrape.Houses,
	}, scrapeJob, orchestrator, planner, nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sched.Start(ctx); err != nil {
		logger.Error("settlement: scheduler start failed", "err", err)
		os.Exit(1)
	}
	logger.Info("settlement: scheduler started",
		"scrapeSettleSpec", cfg.Scheduler.ScrapeSettleSpec,
		"reconciliationSpec", cfg.Scheduler.ReconciliationSpec,
		"timezone", cfg.Scheduler.Timezone)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("settlement: shutting down")
	sched.Stop()
	_ = client.Disconnect(context.Background())
}
