package usecase

import (
	"context"
	"errors"
	"time"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

var (
	ErrInvalidTruckStatus = errors.New("invalid truck status")
	ErrInvalidTruckPlate  = errors.New("invalid truck plate")
)

// TruckUseCase manages the fleet board. Moving a truck into "manutencao"
// opens a pending Maintenance record automatically, so the workshop queue
// never misses a vehicle parked by the dispatcher.
type TruckUseCase struct {
	trucks      *Collection[entities.Truck]
	maintenance *Collection[entities.Maintenance]
}

func NewTruckUseCase(store interfaces.Store) *TruckUseCase {
	return &TruckUseCase{
		trucks: NewCollection(store, entities.CollectionTrucks,
			SequentialID[entities.Truck]("T", 2),
			UniqueKey[entities.Truck]{
				Name:      "plate",
				Value:     func(t entities.Truck) string { return t.Plate },
				Normalize: NormalizeID,
			},
		),
		maintenance: NewCollection(store, entities.CollectionMaintenance,
			TimestampID[entities.Maintenance]("M"),
		),
	}
}

// TruckFilter mirrors the fleet screen controls.
type TruckFilter struct {
	Search string
	Status string
}

func (u *TruckUseCase) List(ctx context.Context, f TruckFilter) []entities.Truck {
	trucks := u.trucks.Load(ctx)
	trucks = FilterBySearchTerm(trucks, f.Search,
		func(t entities.Truck) string { return t.Plate },
		func(t entities.Truck) string { return t.Model },
	)
	trucks = FilterByExactField(trucks, f.Status, func(t entities.Truck) string { return string(t.Status) })
	return trucks
}

func (u *TruckUseCase) GetByID(ctx context.Context, id string) (entities.Truck, error) {
	truck, ok := u.trucks.FindByID(ctx, id)
	if !ok {
		return entities.Truck{}, ErrNotFound
	}
	return truck, nil
}

func (u *TruckUseCase) Create(ctx context.Context, truck entities.Truck) (entities.Truck, error) {
	if truck.Plate == "" {
		return entities.Truck{}, ErrInvalidTruckPlate
	}
	if truck.Status == "" {
		truck.Status = entities.TruckStatusDisponivel
	}
	if !truck.Status.Valid() {
		return entities.Truck{}, ErrInvalidTruckStatus
	}
	return u.trucks.Create(ctx, truck)
}

// TruckPatch carries the editable fields; nil means "keep".
type TruckPatch struct {
	Plate    *string  `json:"plate"`
	Model    *string  `json:"model"`
	Year     *int     `json:"year"`
	Capacity *float64 `json:"capacity"`
	Mileage  *float64 `json:"mileage"`
	DriverID *string  `json:"driverId"`
	Image    *string  `json:"image"`
}

func (u *TruckUseCase) Update(ctx context.Context, id string, patch TruckPatch) (entities.Truck, error) {
	return u.trucks.Update(ctx, id, func(t entities.Truck) entities.Truck {
		if patch.Plate != nil {
			t.Plate = *patch.Plate
		}
		if patch.Model != nil {
			t.Model = *patch.Model
		}
		if patch.Year != nil {
			t.Year = *patch.Year
		}
		if patch.Capacity != nil {
			t.Capacity = *patch.Capacity
		}
		if patch.Mileage != nil {
			t.Mileage = *patch.Mileage
		}
		if patch.DriverID != nil {
			t.DriverID = *patch.DriverID
		}
		if patch.Image != nil {
			t.Image = *patch.Image
		}
		return t
	})
}

// UpdateStatus transitions the truck and, on entry into "manutencao", opens
// an automatic Maintenance record for it.
func (u *TruckUseCase) UpdateStatus(ctx context.Context, id string, status entities.TruckStatus) (entities.Truck, error) {
	if !status.Valid() {
		return entities.Truck{}, ErrInvalidTruckStatus
	}

	previous, ok := u.trucks.FindByID(ctx, id)
	if !ok {
		return entities.Truck{}, ErrNotFound
	}

	updated, err := u.trucks.Update(ctx, id, func(t entities.Truck) entities.Truck {
		t.Status = status
		return t
	})
	if err != nil {
		return entities.Truck{}, err
	}

	if status == entities.TruckStatusManutencao && previous.Status != entities.TruckStatusManutencao {
		_, err := u.maintenance.Create(ctx, entities.Maintenance{
			TruckID:     updated.ID,
			Description: "Manutenção aberta automaticamente",
			Status:      entities.MaintenanceStatusPendente,
			Automatic:   true,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return entities.Truck{}, err
		}
	}
	return updated, nil
}

func (u *TruckUseCase) Delete(ctx context.Context, id string) error {
	return u.trucks.Delete(ctx, id)
}

// Stats is the fleet summary strip: trucks per status.
func (u *TruckUseCase) Stats(ctx context.Context) map[string]int {
	return CountBy(u.trucks.Load(ctx), func(t entities.Truck) string { return string(t.Status) })
}
