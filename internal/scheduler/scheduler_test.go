package scheduler

import (
	"context"
	"testing"
	"time"

	"CryptoScope/internal/analyzer"
	"CryptoScope/internal/collector"
	"CryptoScope/internal/model"
	"CryptoScope/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureNotifier struct {
	sent []string
}

func (c *captureNotifier) SendWithRetry(_ context.Context, text string, _ int) error {
	c.sent = append(c.sent, text)
	return nil
}

func dailyRows(closes ...string) [][]any {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	out := make([][]any, len(closes))
	for i, c := range closes {
		out[i] = []any{start + int64(i*86400), c, c, c, c, c, "1", 1}
	}
	return out
}

func TestRunNow_PartialFailureStillNotifies(t *testing.T) {
	fetcher := &collector.MockFetcher{Rows: map[string][][]any{
		"XXBTZUSD": dailyRows("100", "110", "99"),
		"XETHZUSD": dailyRows("10", "11", "12"),
	}}
	store := session.NewStore()
	a := analyzer.New(collector.NewCollector(fetcher, store, nil))
	n := &captureNotifier{}
	s := NewScheduler(context.Background(), a, n)

	s.RunNow()

	assert.Equal(t, []string{"XXBTZUSD", "XETHZUSD", "XXRPZUSD"}, fetcher.Calls)
	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0], "<b>Bitcoin</b>")
	assert.Contains(t, n.sent[0], "<b>Ethereum</b>")
	assert.Contains(t, n.sent[0], "Ripple")
	assert.ErrorIs(t, func() error { _, err := store.Get(model.Ripple); return err }(), model.ErrNotFound)
}

func TestRefresh_AllAssets(t *testing.T) {
	fetcher := &collector.MockFetcher{Rows: map[string][][]any{
		"XXBTZUSD": dailyRows("100", "110", "99"),
		"XETHZUSD": dailyRows("10", "11", "12"),
		"XXRPZUSD": dailyRows("1", "0.9", "1.2"),
	}}
	a := analyzer.New(collector.NewCollector(fetcher, session.NewStore(), nil))
	s := NewScheduler(context.Background(), a, nil)

	reports, failures := s.Refresh(context.Background())
	assert.Empty(t, failures)
	require.Len(t, reports, 3)
	assert.Equal(t, model.Ripple, reports[2].Asset)

	s.RunNow()
}

func TestRegister(t *testing.T) {
	s := NewScheduler(context.Background(), nil, nil)
	assert.NoError(t, s.Register("0 5 0 * * *"))
	assert.Error(t, s.Register("not a cron"))
}
