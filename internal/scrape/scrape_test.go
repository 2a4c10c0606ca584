package scrape

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/bridgetunes/lottery-settlement/internal/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `
<html><body>
<div>14h20 PT</div>
<table>
<tr><td>1234</td></tr>
<tr><td>5678</td></tr>
<tr><td>9012</td></tr>
<tr><td>3456</td></tr>
<tr><td>7890</td></tr>
</table>
</body></html>`

type fakeAdapter struct {
	name string
	body []byte
	err  error
}

func (f fakeAdapter) Name() string { return f.name }

func (f fakeAdapter) Fetch(_ context.Context, house string, _ time.Time) ([]byte, models.FetchAttempt, error) {
	return f.body, models.FetchAttempt{Source: f.name}, f.err
}

type fakeDrawingStore struct {
	upserted []models.Drawing
	failFor  string
}

func (f *fakeDrawingStore) UpsertDrawing(_ context.Context, d models.Drawing) error {
	if f.failFor != "" && d.House == f.failFor {
		return assert.AnError
	}
	f.upserted = append(f.upserted, d)
	return nil
}

func (f *fakeDrawingStore) ListDrawings(_ context.Context, date string) ([]models.Drawing, error) {
	return f.upserted, nil
}

type fakeAlerter struct {
	reports int
}

func (f *fakeAlerter) Report(_ context.Context, title, message, source string, cause error) {
	f.reports++
}

func newTestJob(store *fakeDrawingStore, alert *fakeAlerter, chain *sources.Chain) *Job {
	return &Job{
		Chain:    chain,
		Drawings: store,
		Alert:    alert,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestJobRunFetchesParsesAndUpserts(t *testing.T) {
	chain := sources.NewChain(fakeAdapter{name: "primary", body: []byte(samplePage)})
	drawingStore := &fakeDrawingStore{}
	alert := &fakeAlerter{}
	job := newTestJob(drawingStore, alert, chain)

	results := job.Run(context.Background(), []string{"RIO"}, time.Now())

	require.Len(t, results, 1)
	assert.Equal(t, "RIO", results[0].House)
	assert.Equal(t, 1, results[0].Fetched)
	assert.Equal(t, 1, results[0].Upserted)
	assert.NoError(t, results[0].FetchErr)
	require.Len(t, drawingStore.upserted, 1)
	assert.Equal(t, "14:20", drawingStore.upserted[0].Time)
}

func TestJobRunRecordsFetchErrWhenNoSourceYieldsAPage(t *testing.T) {
	chain := sources.NewChain(fakeAdapter{name: "primary", err: sources.ErrUnavailable})
	drawingStore := &fakeDrawingStore{}
	alert := &fakeAlerter{}
	job := newTestJob(drawingStore, alert, chain)

	results := job.Run(context.Background(), []string{"RIO"}, time.Now())

	require.Len(t, results, 1)
	assert.Error(t, results[0].FetchErr)
	assert.Empty(t, drawingStore.upserted)
}

func TestJobRunReportsAlertOnUpsertFailure(t *testing.T) {
	chain := sources.NewChain(fakeAdapter{name: "primary", body: []byte(samplePage)})
	drawingStore := &fakeDrawingStore{failFor: "RIO"}
	alert := &fakeAlerter{}
	job := newTestJob(drawingStore, alert, chain)

	results := job.Run(context.Background(), []string{"RIO"}, time.Now())

	require.Len(t, results, 1)
	assert.Error(t, results[0].UpsertErr)
	assert.Equal(t, 1, alert.reports)
}

func TestJobRunFansOutAcrossMultipleHouses(t *testing.T) {
	chain := sources.NewChain(fakeAdapter{name: "primary", body: []byte(samplePage)})
	drawingStore := &fakeDrawingStore{}
	alert := &fakeAlerter{}
	job := newTestJob(drawingStore, alert, chain)

	results := job.Run(context.Background(), []string{"RIO", "BAHIA", "MINAS"}, time.Now())

	assert.Len(t, results, 3)
	houses := map[string]bool{}
	for _, r := range results {
		houses[r.House] = true
	}
	assert.True(t, houses["RIO"])
	assert.True(t, houses["BAHIA"])
	assert.True(t, houses["MINAS"])
}
