// Command api runs the Ops API: a thin HTTP surface for admin-account
// auth plus read-only inspection and manual re-trigger of the
// settlement engine the cmd/settlement process drives on its own cron
// schedule.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bridgetunes/lottery-settlement/api/routes"
	"github.com/bridgetunes/lottery-settlement/internal/alert"
	"github.com/bridgetunes/lottery-settlement/internal/clock"
	"github.com/bridgetunes/lottery-settlement/internal/config"
	"github.com/bridgetunes/lottery-settlement/internal/handlers"
	"github.com/bridgetunes/lottery-settlement/internal/notify"
	"github.com/bridgetunes/lottery-settlement/internal/repositories/mongodb"
	"github.com/bridgetunes/lottery-settlement/internal/resolver"
	"github.com/bridgetunes/lottery-settlement/internal/services"
	"github.com/bridgetunes/lottery-settlement/internal/settlement"
	storemongo "github.com/bridgetunes/lottery-settlement/internal/store/mongodb"
	mongodbpkg "github.com/bridgetunes/lottery-settlement/pkg/mongodb"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if cfg.LogLevel == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	mongoClient, err := mongodbpkg.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	db := mongoClient.Database(cfg.MongoDB.Database)

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warn("api: unknown timezone, defaulting to UTC", "timezone", cfg.Scheduler.Timezone, "err", err)
		loc = time.UTC
	}

	adminUserRepo := mongodb.NewAdminUserRepository(db)
	authService := services.NewAuthService(adminUserRepo, cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authHandler := handlers.NewAuthHandler(authService)

	drawingStore := storemongo.NewDrawingStore(db)
	betStore := storemongo.NewBetStore(db)
	ledgerStore := storemongo.NewLedgerStore(mongoClient.Raw(), db)
	oddsStore := storemongo.NewOddsStore(db)
	runStore := storemongo.NewRunStore(db)

	orchestrator := &settlement.Orchestrator{
		Drawings: drawingStore,
		Bets:     betStore,
		Ledger:   ledgerStore,
		Odds:     oddsStore,
		Runs:     runStore,
		Resolver: resolver.New(),
		Notifier: notify.NewMockNotifier(),
		Alert:    alert.New(cfg.Alert.WebhookURL, logger),
		Clock:    clock.Real{Location: loc},
		Location: loc,
		Logger:   logger,
		Budget:   cfg.Scheduler.SettlementBudget,
	}
	adminHandler := handlers.NewAdminHandler(drawingStore, orchestrator)

	router := routes.SetupRouter(cfg, authHandler, adminHandler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
