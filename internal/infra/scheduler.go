package infra

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"sellerhub/internal/service"
)

// Scheduler manages scheduled background tasks
type Scheduler struct {
	cron        *cron.Cron
	connections *service.ConnectionService
	staleAfter  time.Duration
}

// NewScheduler creates a new scheduler
func NewScheduler(connections *service.ConnectionService, staleAfter time.Duration) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		connections: connections,
		staleAfter:  staleAfter,
	}
}

// Start registers the background jobs and starts the scheduler.
// Store connections that have not synced within the stale window are
// re-synced once every hour.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		log.Println("[CRON] Stale connection sweep triggered")
		if err := s.connections.SyncStale(ctx, s.staleAfter); err != nil {
			log.Printf("ERROR: Stale connection sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("[OK] Scheduler started")
	return nil
}

// Stop stops the scheduler gracefully
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[OK] Scheduler stopped")
}
