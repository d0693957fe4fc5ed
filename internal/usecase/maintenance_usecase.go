package usecase

import (
	"context"
	"errors"
	"time"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

// MaintenanceUseCase lists the workshop queue. Most rows arrive through the
// truck status transition; manual entries and completion happen here.
type MaintenanceUseCase struct {
	maintenance *Collection[entities.Maintenance]
	trucks      *Collection[entities.Truck]
}

func NewMaintenanceUseCase(store interfaces.Store) *MaintenanceUseCase {
	return &MaintenanceUseCase{
		maintenance: NewCollection(store, entities.CollectionMaintenance,
			TimestampID[entities.Maintenance]("M"),
		),
		trucks: NewCollection(store, entities.CollectionTrucks,
			SequentialID[entities.Truck]("T", 2),
		),
	}
}

type MaintenanceFilter struct {
	TruckID string
	Status  string
}

func (u *MaintenanceUseCase) List(ctx context.Context, f MaintenanceFilter) []entities.Maintenance {
	rows := u.maintenance.Load(ctx)
	rows = FilterByExactField(rows, f.TruckID, func(m entities.Maintenance) string { return m.TruckID })
	rows = FilterByExactField(rows, f.Status, func(m entities.Maintenance) string { return string(m.Status) })
	return SortByDateDesc(rows, func(m entities.Maintenance) time.Time { return m.CreatedAt })
}

func (u *MaintenanceUseCase) Create(ctx context.Context, m entities.Maintenance) (entities.Maintenance, error) {
	if m.Status == "" {
		m.Status = entities.MaintenanceStatusPendente
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return u.maintenance.Create(ctx, m)
}

// Complete closes the maintenance and releases the truck back to
// "disponivel" when no other maintenance for it is still pending.
func (u *MaintenanceUseCase) Complete(ctx context.Context, id string) (entities.Maintenance, error) {
	now := time.Now().UTC()
	closed, err := u.maintenance.Update(ctx, id, func(m entities.Maintenance) entities.Maintenance {
		m.Status = entities.MaintenanceStatusConcluida
		m.ClosedAt = &now
		return m
	})
	if err != nil {
		return entities.Maintenance{}, err
	}

	stillPending := u.maintenance.FindAll(ctx, func(m entities.Maintenance) bool {
		return m.TruckID == closed.TruckID && m.Status == entities.MaintenanceStatusPendente
	})
	if len(stillPending) == 0 {
		_, err := u.trucks.Update(ctx, closed.TruckID, func(t entities.Truck) entities.Truck {
			if t.Status == entities.TruckStatusManutencao {
				t.Status = entities.TruckStatusDisponivel
			}
			return t
		})
		if err != nil && !errors.Is(err, ErrNotFound) {
			return entities.Maintenance{}, err
		}
	}
	return closed, nil
}

func (u *MaintenanceUseCase) Delete(ctx context.Context, id string) error {
	return u.maintenance.Delete(ctx, id)
}
