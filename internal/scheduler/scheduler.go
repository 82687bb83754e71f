package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"CryptoScope/internal/analyzer"
	"CryptoScope/internal/model"
	"CryptoScope/internal/report"

	"github.com/robfig/cron/v3"
)

// Notifier delivers a formatted digest. *notifier.TelegramNotifier satisfies it.
type Notifier interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler refreshes every asset on a cron schedule.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Notifier Notifier
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler. notifier may be nil.
func NewScheduler(ctx context.Context, a *analyzer.Analyzer, n Notifier) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		Analyzer: a,
		Notifier: n,
		Ctx:      ctx,
	}
}

// Register adds the refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately.
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

// Refresh fetches and reports every asset. One asset failing does not stop the others.
func (s *Scheduler) Refresh(ctx context.Context) ([]*analyzer.AssetReport, []error) {
	var reports []*analyzer.AssetReport
	var failures []error
	for _, asset := range model.AllAssets {
		rep, err := s.Analyzer.FetchAndReport(ctx, asset)
		if err != nil {
			log.Printf("[ERROR] refresh %s: %v", asset, err)
			failures = append(failures, err)
			continue
		}
		reports = append(reports, rep)
	}
	return reports, failures
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running refresh task")
	reports, failures := s.Refresh(s.Ctx)

	if len(reports) == len(model.AllAssets) {
		if m, err := s.Analyzer.Correlation(); err != nil {
			log.Printf("[WARN] correlation: %v", err)
		} else {
			log.Printf("[INFO] correlation matrix:\n%s", report.FormatCorrelation(m))
		}
	}

	s.trySend(report.FormatDigest(time.Now(), reports, failures))
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
