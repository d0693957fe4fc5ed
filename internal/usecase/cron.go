package usecase

import (
	"context"
	"log"
	"time"
)

// CronService runs the periodic back-office jobs: the notification scan and
// the chat backup pruning. The timers never coordinate with each other;
// each one just re-runs its own load, compute and persist cycle.
type CronService struct {
	Notifications *NotificationUseCase
	ChatLogs      *ChatLogUseCase

	ScanInterval     time.Duration
	PruneInterval    time.Duration
	StalePendingDays int
}

func NewCronService(notifications *NotificationUseCase, chatLogs *ChatLogUseCase) *CronService {
	return &CronService{
		Notifications:    notifications,
		ChatLogs:         chatLogs,
		ScanInterval:     30 * time.Second,
		PruneInterval:    time.Hour,
		StalePendingDays: 3,
	}
}

func (s *CronService) Start(ctx context.Context) {
	go s.runScanJob(ctx)
	go s.runPruneJob(ctx)
}

func (s *CronService) runScanJob(ctx context.Context) {
	ticker := time.NewTicker(s.ScanInterval)
	for {
		select {
		case <-ticker.C:
			created, err := s.Notifications.Scan(ctx, s.StalePendingDays)
			if err != nil {
				log.Printf("[cron] notification scan failed: %v", err)
			} else if created > 0 {
				log.Printf("[cron] notification scan created %d notifications", created)
			}
		case <-ctx.Done():
			log.Println("[cron] stopping notification scan")
			ticker.Stop()
			return
		}
	}
}

func (s *CronService) runPruneJob(ctx context.Context) {
	// Prune once on startup, then hourly.
	if _, err := s.ChatLogs.PruneBackups(ctx, BackupRetention); err != nil {
		log.Printf("[cron] initial backup prune failed: %v", err)
	}
	ticker := time.NewTicker(s.PruneInterval)
	for {
		select {
		case <-ticker.C:
			removed, err := s.ChatLogs.PruneBackups(ctx, BackupRetention)
			if err != nil {
				log.Printf("[cron] backup prune failed: %v", err)
			} else if removed > 0 {
				log.Printf("[cron] pruned %d expired backup batches", removed)
			}
		case <-ctx.Done():
			log.Println("[cron] stopping backup prune")
			ticker.Stop()
			return
		}
	}
}
