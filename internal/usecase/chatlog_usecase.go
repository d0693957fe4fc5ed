package usecase

import (
	"context"
	"time"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	// LiveLogCap bounds the live chat action log; overflow is archived.
	LiveLogCap = 1000
	// BackupRetention is how long archived batches are kept.
	BackupRetention = 30 * 24 * time.Hour
)

// ChatLogUseCase is the capped action log: the newest LiveLogCap entries
// stay in the live collection, older entries move into timestamped backup
// batches, and batches past the retention window are pruned.
type ChatLogUseCase struct {
	live    *Collection[entities.ChatActionLog]
	backups *Collection[entities.ChatBackupBatch]
}

func NewChatLogUseCase(store interfaces.Store) *ChatLogUseCase {
	return &ChatLogUseCase{
		live: NewCollection(store, entities.CollectionChatLogs,
			TimestampID[entities.ChatActionLog]("L"),
		),
		backups: NewCollection(store, entities.CollectionChatBackups,
			TimestampID[entities.ChatBackupBatch]("B"),
		),
	}
}

// Append inserts the entry at the front of the live log. When the live log
// exceeds the cap, everything past the cap moves into one new backup batch
// stamped with the current time.
func (u *ChatLogUseCase) Append(ctx context.Context, entry entities.ChatActionLog) (entities.ChatActionLog, error) {
	if entry.ID == "" {
		entry.ID = "L" + uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	live := append([]entities.ChatActionLog{entry}, u.live.Load(ctx)...)
	if len(live) > LiveLogCap {
		overflow := make([]entities.ChatActionLog, len(live)-LiveLogCap)
		copy(overflow, live[LiveLogCap:])
		live = live[:LiveLogCap]

		if _, err := u.backups.Create(ctx, entities.ChatBackupBatch{
			ArchivedAt: time.Now().UTC(),
			Entries:    overflow,
		}); err != nil {
			return entities.ChatActionLog{}, err
		}
	}
	if err := u.live.Replace(ctx, live); err != nil {
		return entities.ChatActionLog{}, err
	}
	return entry, nil
}

// PruneBackups drops backup batches whose archive stamp is older than
// maxAge. It runs on load and on the hourly timer.
func (u *ChatLogUseCase) PruneBackups(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	batches := u.backups.Load(ctx)
	kept := make([]entities.ChatBackupBatch, 0, len(batches))
	for _, b := range batches {
		if b.ArchivedAt.After(cutoff) {
			kept = append(kept, b)
		}
	}
	removed := len(batches) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, u.backups.Replace(ctx, kept)
}

// MergedView joins live entries with everything still in backup, newest
// first. Live and backup can transiently hold the same id; the first
// occurrence wins.
func (u *ChatLogUseCase) MergedView(ctx context.Context) []entities.ChatActionLog {
	seen := make(map[string]bool)
	var merged []entities.ChatActionLog

	appendUnique := func(entries []entities.ChatActionLog) {
		for _, e := range entries {
			if seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			merged = append(merged, e)
		}
	}

	appendUnique(u.live.Load(ctx))
	for _, batch := range u.backups.Load(ctx) {
		appendUnique(batch.Entries)
	}
	return SortByDateDesc(merged, func(e entities.ChatActionLog) time.Time { return e.CreatedAt })
}

func (u *ChatLogUseCase) LiveCount(ctx context.Context) int {
	return len(u.live.Load(ctx))
}
