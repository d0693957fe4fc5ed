package usecase

import (
	"context"
	"errors"
	"testing"

	"frota_backoffice/internal/adapter/persistence/kvstore"
	"frota_backoffice/internal/domain/entities"
)

func TestTruckUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc := NewTruckUseCase(kvstore.NewMemoryStore())

	t.Run("missing plate", func(t *testing.T) {
		_, err := uc.Create(ctx, entities.Truck{Model: "Volvo FH"})
		if !errors.Is(err, ErrInvalidTruckPlate) {
			t.Fatalf("expected ErrInvalidTruckPlate, got %v", err)
		}
	})

	t.Run("defaults to disponivel", func(t *testing.T) {
		created, err := uc.Create(ctx, entities.Truck{Plate: "ABC-1234"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.TruckStatusDisponivel {
			t.Fatalf("expected disponivel, got %q", created.Status)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := uc.Create(ctx, entities.Truck{Plate: "DEF-5678", Status: "quebrado"})
		if !errors.Is(err, ErrInvalidTruckStatus) {
			t.Fatalf("expected ErrInvalidTruckStatus, got %v", err)
		}
	})

	t.Run("duplicate plate", func(t *testing.T) {
		_, err := uc.Create(ctx, entities.Truck{Plate: "abc-1234"})
		if !errors.Is(err, ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
	})
}

func TestTruckUseCase_UpdateStatusOpensMaintenance(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	trucks := NewTruckUseCase(store)
	workshop := NewMaintenanceUseCase(store)

	created, err := trucks.Create(ctx, entities.Truck{Plate: "ABC-1234"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := trucks.UpdateStatus(ctx, created.ID, entities.TruckStatusManutencao)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != entities.TruckStatusManutencao {
		t.Fatalf("expected manutencao, got %q", updated.Status)
	}

	rows := workshop.List(ctx, MaintenanceFilter{TruckID: created.ID})
	if len(rows) != 1 {
		t.Fatalf("expected one maintenance record, got %d", len(rows))
	}
	m := rows[0]
	if m.Status != entities.MaintenanceStatusPendente || !m.Automatic {
		t.Fatalf("expected automatic pendente record, got %+v", m)
	}

	// Re-applying the same status must not open a second record.
	if _, err := trucks.UpdateStatus(ctx, created.ID, entities.TruckStatusManutencao); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows := workshop.List(ctx, MaintenanceFilter{TruckID: created.ID}); len(rows) != 1 {
		t.Fatalf("expected one maintenance record after repeat, got %d", len(rows))
	}
}

func TestTruckUseCase_UpdateStatusValidation(t *testing.T) {
	ctx := context.Background()
	uc := NewTruckUseCase(kvstore.NewMemoryStore())

	t.Run("invalid status", func(t *testing.T) {
		_, err := uc.UpdateStatus(ctx, "T01", "desconhecido")
		if !errors.Is(err, ErrInvalidTruckStatus) {
			t.Fatalf("expected ErrInvalidTruckStatus, got %v", err)
		}
	})

	t.Run("missing truck", func(t *testing.T) {
		_, err := uc.UpdateStatus(ctx, "T77", entities.TruckStatusParado)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestTruckUseCase_ListAndStats(t *testing.T) {
	ctx := context.Background()
	uc := NewTruckUseCase(kvstore.NewMemoryStore())

	seed := []entities.Truck{
		{Plate: "AAA-0001", Model: "Volvo FH", Status: entities.TruckStatusDisponivel},
		{Plate: "BBB-0002", Model: "Scania R450", Status: entities.TruckStatusEmRota},
		{Plate: "CCC-0003", Model: "Volvo FMX", Status: entities.TruckStatusDisponivel},
	}
	for _, tr := range seed {
		if _, err := uc.Create(ctx, tr); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := uc.List(ctx, TruckFilter{Search: "volvo"}); len(got) != 2 {
		t.Fatalf("expected 2 volvos, got %d", len(got))
	}
	if got := uc.List(ctx, TruckFilter{Status: "em_rota"}); len(got) != 1 {
		t.Fatalf("expected 1 em_rota, got %d", len(got))
	}

	stats := uc.Stats(ctx)
	if stats["disponivel"] != 2 || stats["em_rota"] != 1 {
		t.Fatalf("unexpected stats: %v", stats)
	}
}

func TestMaintenanceUseCase_CompleteReleasesTruck(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	trucks := NewTruckUseCase(store)
	workshop := NewMaintenanceUseCase(store)

	created, err := trucks.Create(ctx, entities.Truck{Plate: "ABC-1234"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := trucks.UpdateStatus(ctx, created.ID, entities.TruckStatusManutencao); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := workshop.Create(ctx, entities.Maintenance{TruckID: created.ID, Description: "Troca de pneus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	auto := workshop.List(ctx, MaintenanceFilter{TruckID: created.ID, Status: "pendente"})
	if len(auto) != 2 {
		t.Fatalf("expected 2 pending records, got %d", len(auto))
	}

	// Closing one of two keeps the truck parked.
	if _, err := workshop.Complete(ctx, second.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	truck, err := trucks.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if truck.Status != entities.TruckStatusManutencao {
		t.Fatalf("expected truck still in manutencao, got %q", truck.Status)
	}

	// Closing the last one releases it.
	remaining := workshop.List(ctx, MaintenanceFilter{TruckID: created.ID, Status: "pendente"})
	if len(remaining) != 1 {
		t.Fatalf("expected 1 pending record, got %d", len(remaining))
	}
	closed, err := workshop.Complete(ctx, remaining[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closed.ClosedAt == nil {
		t.Fatalf("expected ClosedAt to be set")
	}
	truck, err = trucks.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if truck.Status != entities.TruckStatusDisponivel {
		t.Fatalf("expected truck released to disponivel, got %q", truck.Status)
	}
}
