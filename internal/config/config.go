// Package config loads application configuration from a YAML file (if
// present) overlaid with environment variables, via
// github.com/spf13/viper and github.com/joho/godotenv — the teacher's
// config-loading stack, generalized from the MTN/SMS domain to this
// scraper/settlement one.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server     ServerConfig
	MongoDB    MongoDBConfig
	JWT        JWTConfig
	Scrape     ScrapeConfig
	Scheduler  SchedulerConfig
	Alert      AlertConfig
	Settlement SettlementConfig
	LogLevel   string
}

// ServerConfig holds the Ops API (A4) server configuration.
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration.
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration for the Ops API's admin routes.
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// ScrapeConfig holds the Source Adapters' (C1) network configuration.
type ScrapeConfig struct {
	RenderAPIBaseURL string
	RenderAPIKey     string
	MockRenderAPI    bool
	PaidSourceURL    string
	Sequential       bool
	InterHouseDelay  time.Duration
	Houses           []string
}

// SchedulerConfig holds the recurring-job cron specs and the job
// wall-clock budgets the settlement loop checks against (spec.md §5).
type SchedulerConfig struct {
	ScrapeSettleSpec   string
	ReconciliationSpec string
	Timezone           string
	ScrapeJobBudget    time.Duration
	SettlementBudget   time.Duration
}

// AlertConfig holds the uncaught-exception webhook configuration (A3).
type AlertConfig struct {
	WebhookURL string
}

// SettlementConfig holds settlement-engine-specific tuning (A5's seed
// files plus the notification endpoint).
type SettlementConfig struct {
	LotteryTokenCSV     string
	ExpectedCountCSV    string
	NotificationURL     string
	PendingBetsPageSize int
}

// Load loads configuration from a .env file (if present), a config.yaml
// (if present), and environment variables, in that overlay order.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})

	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "lottery_settlement")

	viper.SetDefault("JWT.ExpiresIn", 24*60*60)

	viper.SetDefault("Scrape.MockRenderAPI", true)
	viper.SetDefault("Scrape.Sequential", false)
	viper.SetDefault("Scrape.InterHouseDelay", "2s")
	viper.SetDefault("Scrape.Houses", defaultHouses)

	viper.SetDefault("Scheduler.ScrapeSettleSpec", "0,30 1,7-23 * * *")
	viper.SetDefault("Scheduler.ReconciliationSpec", "*/2 * * * *")
	viper.SetDefault("Scheduler.Timezone", "America/Sao_Paulo")
	viper.SetDefault("Scheduler.ScrapeJobBudget", "10m")
	viper.SetDefault("Scheduler.SettlementBudget", "15m")

	viper.SetDefault("Settlement.LotteryTokenCSV", "config/lottery_tokens.csv")
	viper.SetDefault("Settlement.ExpectedCountCSV", "config/expected_drawing_counts.csv")
	viper.SetDefault("Settlement.PendingBetsPageSize", 50000)

	viper.SetDefault("LogLevel", "info")
}

var defaultHouses = []string{
	"RIO", "BAHIA", "LOTECE", "LOTEP", "MINAS", "GOIAS", "RN", "SAOPAULO",
	"SERGIPE", "MARANHAO", "PERNAMBUCO", "PARA", "ESPIRITOSANTO", "CAIXA",
}
