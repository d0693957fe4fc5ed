package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"frota_backoffice/internal/adapter/persistence/kvstore"
	"frota_backoffice/internal/domain/entities"
)

func TestChatLogUseCase_AppendCapsLiveLog(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	uc := NewChatLogUseCase(store)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < LiveLogCap; i++ {
		_, err := uc.Append(ctx, entities.ChatActionLog{
			ID:        fmt.Sprintf("L%04d", i),
			Action:    entities.ChatActionMessageSent,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
	}
	if got := uc.LiveCount(ctx); got != LiveLogCap {
		t.Fatalf("expected %d live entries, got %d", LiveLogCap, got)
	}

	backups := NewCollection(store, entities.CollectionChatBackups,
		TimestampID[entities.ChatBackupBatch]("B"),
	)
	if got := backups.Load(ctx); len(got) != 0 {
		t.Fatalf("expected no backups at the cap, got %d", len(got))
	}

	// One more entry overflows exactly the oldest one into a batch.
	if _, err := uc.Append(ctx, entities.ChatActionLog{
		ID:        "L-overflow",
		Action:    entities.ChatActionMessageSent,
		CreatedAt: base.Add(time.Hour),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := uc.LiveCount(ctx); got != LiveLogCap {
		t.Fatalf("expected live log capped at %d, got %d", LiveLogCap, got)
	}
	batches := backups.Load(ctx)
	if len(batches) != 1 {
		t.Fatalf("expected one backup batch, got %d", len(batches))
	}
	if len(batches[0].Entries) != 1 || batches[0].Entries[0].ID != "L0000" {
		t.Fatalf("expected the oldest entry archived, got %+v", batches[0].Entries)
	}
	if batches[0].ArchivedAt.IsZero() {
		t.Fatalf("expected archive stamp")
	}
}

func TestChatLogUseCase_AppendFillsIDAndStamp(t *testing.T) {
	ctx := context.Background()
	uc := NewChatLogUseCase(kvstore.NewMemoryStore())

	entry, err := uc.Append(ctx, entities.ChatActionLog{Action: entities.ChatActionChatAttended})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID == "" || entry.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and stamp: %+v", entry)
	}
}

func TestChatLogUseCase_PruneBackups(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	uc := NewChatLogUseCase(store)

	backups := NewCollection(store, entities.CollectionChatBackups,
		TimestampID[entities.ChatBackupBatch]("B"),
	)
	now := time.Now().UTC()
	seed := []entities.ChatBackupBatch{
		{ID: "B-old", ArchivedAt: now.Add(-31 * 24 * time.Hour)},
		{ID: "B-fresh", ArchivedAt: now.Add(-24 * time.Hour)},
	}
	if err := backups.Replace(ctx, seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	removed, err := uc.PruneBackups(ctx, BackupRetention)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed batch, got %d", removed)
	}
	kept := backups.Load(ctx)
	if len(kept) != 1 || kept[0].ID != "B-fresh" {
		t.Fatalf("expected only the fresh batch, got %+v", kept)
	}

	// Nothing left to prune; the store is not rewritten.
	removed, err = uc.PruneBackups(ctx, BackupRetention)
	if err != nil || removed != 0 {
		t.Fatalf("expected no-op prune, got %d, %v", removed, err)
	}
}

func TestChatLogUseCase_MergedView(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	uc := NewChatLogUseCase(store)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	live := NewCollection(store, entities.CollectionChatLogs,
		TimestampID[entities.ChatActionLog]("L"),
	)
	if err := live.Replace(ctx, []entities.ChatActionLog{
		{ID: "L2", Action: entities.ChatActionMessageSent, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "L1", Action: entities.ChatActionMessageSent, CreatedAt: base.Add(time.Hour)},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	backups := NewCollection(store, entities.CollectionChatBackups,
		TimestampID[entities.ChatBackupBatch]("B"),
	)
	if err := backups.Replace(ctx, []entities.ChatBackupBatch{{
		ID:         "B1",
		ArchivedAt: base.Add(3 * time.Hour),
		Entries: []entities.ChatActionLog{
			// L1 also lives in the live log; the live copy wins.
			{ID: "L1", Action: entities.ChatActionChatDeleted, CreatedAt: base.Add(time.Hour)},
			{ID: "L0", Action: entities.ChatActionMessageSent, CreatedAt: base},
		},
	}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	merged := uc.MergedView(ctx)
	if len(merged) != 3 {
		t.Fatalf("expected 3 deduplicated entries, got %d", len(merged))
	}
	if merged[0].ID != "L2" || merged[1].ID != "L1" || merged[2].ID != "L0" {
		t.Fatalf("unexpected order: %+v", merged)
	}
	if merged[1].Action != entities.ChatActionMessageSent {
		t.Fatalf("expected the live copy of L1 to win, got %+v", merged[1])
	}
}
