package usecase

import (
	"context"
	"time"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

// RouteUseCase manages planned routes. A moment reported on a route is
// appended to its feed and cascades the matching status change onto every
// delivery assigned to that route.
type RouteUseCase struct {
	routes     *Collection[entities.Route]
	deliveries *Collection[entities.Delivery]
}

func NewRouteUseCase(store interfaces.Store) *RouteUseCase {
	return &RouteUseCase{
		routes: NewCollection(store, entities.CollectionRoutes,
			SequentialID[entities.Route]("R", 3),
		),
		deliveries: NewCollection(store, entities.CollectionDeliveries,
			TimestampID[entities.Delivery]("D"),
		),
	}
}

type RouteFilter struct {
	Search string
	Status string
}

func (u *RouteUseCase) List(ctx context.Context, f RouteFilter) []entities.Route {
	routes := u.routes.Load(ctx)
	routes = FilterBySearchTerm(routes, f.Search,
		func(r entities.Route) string { return r.Name },
		func(r entities.Route) string { return r.Origin },
		func(r entities.Route) string { return r.Destination },
	)
	routes = FilterByExactField(routes, f.Status, func(r entities.Route) string { return string(r.Status) })
	return routes
}

func (u *RouteUseCase) GetByID(ctx context.Context, id string) (entities.Route, error) {
	route, ok := u.routes.FindByID(ctx, id)
	if !ok {
		return entities.Route{}, ErrNotFound
	}
	return route, nil
}

func (u *RouteUseCase) Create(ctx context.Context, route entities.Route) (entities.Route, error) {
	if route.Status == "" {
		route.Status = entities.RouteStatusPlanejada
	}
	return u.routes.Create(ctx, route)
}

type RoutePatch struct {
	Name        *string `json:"name"`
	Origin      *string `json:"origin"`
	Destination *string `json:"destination"`
	DriverID    *string `json:"driverId"`
	TruckID     *string `json:"truckId"`
	Date        *string `json:"date"`
}

func (u *RouteUseCase) Update(ctx context.Context, id string, patch RoutePatch) (entities.Route, error) {
	return u.routes.Update(ctx, id, func(r entities.Route) entities.Route {
		if patch.Name != nil {
			r.Name = *patch.Name
		}
		if patch.Origin != nil {
			r.Origin = *patch.Origin
		}
		if patch.Destination != nil {
			r.Destination = *patch.Destination
		}
		if patch.DriverID != nil {
			r.DriverID = *patch.DriverID
		}
		if patch.TruckID != nil {
			r.TruckID = *patch.TruckID
		}
		if patch.Date != nil {
			r.Date = *patch.Date
		}
		return r
	})
}

func (u *RouteUseCase) Delete(ctx context.Context, id string) error {
	return u.routes.Delete(ctx, id)
}

// RegisterMoment appends the event to the route feed, moves the route
// forward (saida means em_andamento, entrega means concluida) and cascades
// the delivery transition to every delivery on the route.
func (u *RouteUseCase) RegisterMoment(ctx context.Context, routeID string, moment entities.Moment) (entities.Route, error) {
	if !moment.Type.Valid() {
		return entities.Route{}, ErrInvalidMoment
	}
	if moment.ReportedAt.IsZero() {
		moment.ReportedAt = time.Now().UTC()
	}

	route, err := u.routes.Update(ctx, routeID, func(r entities.Route) entities.Route {
		r.Moments = append(r.Moments, moment)
		switch moment.Type {
		case entities.MomentSaida:
			r.Status = entities.RouteStatusEmAndamento
		case entities.MomentEntrega:
			r.Status = entities.RouteStatusConcluida
		}
		return r
	})
	if err != nil {
		return entities.Route{}, err
	}

	target := statusAfterMoment(moment.Type)
	assigned := u.deliveries.FindAll(ctx, func(d entities.Delivery) bool { return d.RouteID == route.ID })
	for _, d := range assigned {
		if d.Status == entities.DeliveryStatusEntregue || d.Status == entities.DeliveryStatusCancelada {
			continue
		}
		if _, err := u.deliveries.Update(ctx, d.ID, func(d entities.Delivery) entities.Delivery {
			d.Status = target
			return d
		}); err != nil {
			return entities.Route{}, err
		}
	}
	return route, nil
}
