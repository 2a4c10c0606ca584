package sources

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/models"
)

// FederalAdapter fetches the federal draw listing: one page lists many
// dates, with a fallback secondary URL, per spec.md §4.1's note on
// bespoke sources.
type FederalAdapter struct {
	primaryURL  string
	fallbackURL string
	client      *http.Client
}

func NewFederalAdapter(primaryURL, fallbackURL string) *FederalAdapter {
	return &FederalAdapter{primaryURL: primaryURL, fallbackURL: fallbackURL, client: newSharedClient()}
}

func (a *FederalAdapter) Name() string { return "federal_listing" }

func (a *FederalAdapter) Fetch(ctx context.Context, _ string, _ time.Time) ([]byte, models.FetchAttempt, error) {
	body, attempt, err := doGet(ctx, a.client, a.Name(), a.primaryURL)
	if err == nil {
		return body, attempt, nil
	}
	if a.fallbackURL == "" {
		return body, attempt, err
	}
	return doGet(ctx, a.client, a.Name()+"_fallback", a.fallbackURL)
}

// CaixaJSONAdapter fetches CAIXA's JSON API for a given federal-lottery
// code (LOTO_FACIL, QUINA, MEGA_SENA).
type CaixaJSONAdapter struct {
	baseURL string
	client  *http.Client
}

func NewCaixaJSONAdapter(baseURL string) *CaixaJSONAdapter {
	return &CaixaJSONAdapter{baseURL: baseURL, client: newSharedClient()}
}

func (a *CaixaJSONAdapter) Name() string { return "caixa_json" }

// Fetch ignores date: CAIXA's endpoint always returns the latest result
// for the given lottery code, and parser.ParseCaixaJSON filters the
// decoded result by date.
func (a *CaixaJSONAdapter) Fetch(ctx context.Context, lotteryCode string, _ time.Time) ([]byte, models.FetchAttempt, error) {
	url := fmt.Sprintf("%s/%s", a.baseURL, lotteryCode)
	return doGet(ctx, a.client, a.Name(), url)
}
