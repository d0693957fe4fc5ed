package usecase

import (
	"context"
	"errors"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

var (
	ErrInvalidDeliveryStatus = errors.New("invalid delivery status")
	ErrInvalidMoment         = errors.New("invalid moment type")
)

// DeliveryUseCase backs the deliveries board: CRUD, the search/status/date
// filters, revenue summaries, and the driver-reported moment transitions.
type DeliveryUseCase struct {
	deliveries *Collection[entities.Delivery]
}

func NewDeliveryUseCase(store interfaces.Store) *DeliveryUseCase {
	return &DeliveryUseCase{
		deliveries: NewCollection(store, entities.CollectionDeliveries,
			TimestampID[entities.Delivery]("D"),
			UniqueKey[entities.Delivery]{
				Name:      "trackingCode",
				Value:     func(d entities.Delivery) string { return d.TrackingCode },
				Normalize: NormalizeID,
			},
		),
	}
}

type DeliveryFilter struct {
	Search    string
	Status    string
	DateStart string
	DateEnd   string
	DriverID  string
}

func (u *DeliveryUseCase) List(ctx context.Context, f DeliveryFilter) []entities.Delivery {
	deliveries := u.deliveries.Load(ctx)
	deliveries = FilterBySearchTerm(deliveries, f.Search,
		func(d entities.Delivery) string { return d.TrackingCode },
		func(d entities.Delivery) string { return d.CustomerID },
	)
	deliveries = FilterByExactField(deliveries, f.Status, func(d entities.Delivery) string { return string(d.Status) })
	deliveries = FilterByExactField(deliveries, f.DriverID, func(d entities.Delivery) string { return d.DriverID })
	deliveries = FilterByDateRange(deliveries, f.DateStart, f.DateEnd, func(d entities.Delivery) string { return d.Date })
	return deliveries
}

func (u *DeliveryUseCase) GetByID(ctx context.Context, id string) (entities.Delivery, error) {
	delivery, ok := u.deliveries.FindByID(ctx, id)
	if !ok {
		return entities.Delivery{}, ErrNotFound
	}
	return delivery, nil
}

func (u *DeliveryUseCase) Create(ctx context.Context, delivery entities.Delivery) (entities.Delivery, error) {
	if delivery.Status == "" {
		delivery.Status = entities.DeliveryStatusPendente
	}
	if !delivery.Status.Valid() {
		return entities.Delivery{}, ErrInvalidDeliveryStatus
	}
	if delivery.TrackingCode == "" {
		delivery.TrackingCode = TimestampID[entities.Delivery]("BR")(nil)
	}
	return u.deliveries.Create(ctx, delivery)
}

type DeliveryPatch struct {
	CustomerID *string  `json:"customerId"`
	TotalValue *float64 `json:"totalValue"`
	Discount   *float64 `json:"discount"`
	DriverID   *string  `json:"driverId"`
	TruckID    *string  `json:"truckId"`
	RouteID    *string  `json:"routeId"`
	Date       *string  `json:"date"`
	Status     *string  `json:"status"`
}

func (u *DeliveryUseCase) Update(ctx context.Context, id string, patch DeliveryPatch) (entities.Delivery, error) {
	if patch.Status != nil && !entities.DeliveryStatus(*patch.Status).Valid() {
		return entities.Delivery{}, ErrInvalidDeliveryStatus
	}
	return u.deliveries.Update(ctx, id, func(d entities.Delivery) entities.Delivery {
		if patch.CustomerID != nil {
			d.CustomerID = *patch.CustomerID
		}
		if patch.TotalValue != nil {
			d.TotalValue = *patch.TotalValue
		}
		if patch.Discount != nil {
			d.Discount = *patch.Discount
		}
		if patch.DriverID != nil {
			d.DriverID = *patch.DriverID
		}
		if patch.TruckID != nil {
			d.TruckID = *patch.TruckID
		}
		if patch.RouteID != nil {
			d.RouteID = *patch.RouteID
		}
		if patch.Date != nil {
			d.Date = *patch.Date
		}
		if patch.Status != nil {
			d.Status = entities.DeliveryStatus(*patch.Status)
		}
		return d
	})
}

func (u *DeliveryUseCase) Delete(ctx context.Context, id string) error {
	return u.deliveries.Delete(ctx, id)
}

// RegisterMoment applies a driver-reported event to one delivery: saida
// moves it to em_percurso and entrega moves it to entregue.
func (u *DeliveryUseCase) RegisterMoment(ctx context.Context, id string, moment entities.MomentType) (entities.Delivery, error) {
	if !moment.Valid() {
		return entities.Delivery{}, ErrInvalidMoment
	}
	return u.deliveries.Update(ctx, id, func(d entities.Delivery) entities.Delivery {
		d.Status = statusAfterMoment(moment)
		return d
	})
}

func statusAfterMoment(moment entities.MomentType) entities.DeliveryStatus {
	if moment == entities.MomentEntrega {
		return entities.DeliveryStatusEntregue
	}
	return entities.DeliveryStatusEmPercurso
}

// DeliveryStats feeds the summary strip above the board.
type DeliveryStats struct {
	ByStatus map[string]int `json:"byStatus"`
	Revenue  float64        `json:"revenue"`
	Total    int            `json:"total"`
}

// Stats aggregates the filtered board: counts per status and revenue as the
// sum of totalValue minus discount over the non-cancelled rows.
func (u *DeliveryUseCase) Stats(ctx context.Context, f DeliveryFilter) DeliveryStats {
	deliveries := u.List(ctx, f)
	billable := make([]entities.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if d.Status != entities.DeliveryStatusCancelada {
			billable = append(billable, d)
		}
	}
	return DeliveryStats{
		ByStatus: CountBy(deliveries, func(d entities.Delivery) string { return string(d.Status) }),
		Revenue:  SumBy(billable, entities.Delivery.Revenue),
		Total:    len(deliveries),
	}
}
