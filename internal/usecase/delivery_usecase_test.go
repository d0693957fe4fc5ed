package usecase

import (
	"context"
	"errors"
	"testing"

	"frota_backoffice/internal/adapter/persistence/kvstore"
	"frota_backoffice/internal/domain/entities"
)

func TestDeliveryUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc := NewDeliveryUseCase(kvstore.NewMemoryStore())

	t.Run("defaults", func(t *testing.T) {
		created, err := uc.Create(ctx, entities.Delivery{TotalValue: 100, Date: "2026-08-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.DeliveryStatusPendente {
			t.Fatalf("expected pendente, got %q", created.Status)
		}
		if created.ID == "" || created.TrackingCode == "" {
			t.Fatalf("expected generated id and tracking code: %+v", created)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := uc.Create(ctx, entities.Delivery{Status: "extraviada"})
		if !errors.Is(err, ErrInvalidDeliveryStatus) {
			t.Fatalf("expected ErrInvalidDeliveryStatus, got %v", err)
		}
	})

	t.Run("duplicate tracking code", func(t *testing.T) {
		if _, err := uc.Create(ctx, entities.Delivery{TrackingCode: "BR-42"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Create(ctx, entities.Delivery{TrackingCode: "br-42"})
		if !errors.Is(err, ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
	})
}

func TestDeliveryUseCase_RegisterMoment(t *testing.T) {
	ctx := context.Background()
	uc := NewDeliveryUseCase(kvstore.NewMemoryStore())

	created, err := uc.Create(ctx, entities.Delivery{TrackingCode: "BR-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("saida", func(t *testing.T) {
		updated, err := uc.RegisterMoment(ctx, created.ID, entities.MomentSaida)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.DeliveryStatusEmPercurso {
			t.Fatalf("expected em_percurso, got %q", updated.Status)
		}
	})

	t.Run("entrega", func(t *testing.T) {
		updated, err := uc.RegisterMoment(ctx, created.ID, entities.MomentEntrega)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.DeliveryStatusEntregue {
			t.Fatalf("expected entregue, got %q", updated.Status)
		}
	})

	t.Run("invalid moment", func(t *testing.T) {
		_, err := uc.RegisterMoment(ctx, created.ID, "parada")
		if !errors.Is(err, ErrInvalidMoment) {
			t.Fatalf("expected ErrInvalidMoment, got %v", err)
		}
	})

	t.Run("missing delivery", func(t *testing.T) {
		_, err := uc.RegisterMoment(ctx, "D-missing", entities.MomentSaida)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeliveryUseCase_Stats(t *testing.T) {
	ctx := context.Background()
	uc := NewDeliveryUseCase(kvstore.NewMemoryStore())

	seed := []entities.Delivery{
		{TrackingCode: "BR-1", Status: entities.DeliveryStatusEntregue, TotalValue: 100, Discount: 10, Date: "2026-08-01"},
		{TrackingCode: "BR-2", Status: entities.DeliveryStatusPendente, TotalValue: 50, Date: "2026-08-02"},
		{TrackingCode: "BR-3", Status: entities.DeliveryStatusCancelada, TotalValue: 999, Date: "2026-08-03"},
	}
	for _, d := range seed {
		if _, err := uc.Create(ctx, d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stats := uc.Stats(ctx, DeliveryFilter{})
	if stats.Total != 3 {
		t.Fatalf("expected total 3, got %d", stats.Total)
	}
	// Cancelled deliveries count in the board but never in revenue.
	if stats.Revenue != 140 {
		t.Fatalf("expected revenue 140, got %v", stats.Revenue)
	}
	if stats.ByStatus["cancelada"] != 1 {
		t.Fatalf("unexpected status counts: %v", stats.ByStatus)
	}

	filtered := uc.Stats(ctx, DeliveryFilter{DateStart: "2026-08-02", DateEnd: "2026-08-02"})
	if filtered.Total != 1 || filtered.Revenue != 50 {
		t.Fatalf("unexpected filtered stats: %+v", filtered)
	}
}

func TestRouteUseCase_RegisterMomentCascades(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	routes := NewRouteUseCase(store)
	deliveries := NewDeliveryUseCase(store)

	route, err := routes.Create(ctx, entities.Route{Name: "Capital", Origin: "Sao Paulo", Destination: "Curitiba"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.Status != entities.RouteStatusPlanejada {
		t.Fatalf("expected planejada, got %q", route.Status)
	}

	onRoute, err := deliveries.Create(ctx, entities.Delivery{TrackingCode: "BR-1", RouteID: route.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	done, err := deliveries.Create(ctx, entities.Delivery{TrackingCode: "BR-2", RouteID: route.ID, Status: entities.DeliveryStatusEntregue})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	offRoute, err := deliveries.Create(ctx, entities.Delivery{TrackingCode: "BR-3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := routes.RegisterMoment(ctx, route.ID, entities.Moment{Type: entities.MomentSaida, DriverID: "E001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != entities.RouteStatusEmAndamento {
		t.Fatalf("expected em_andamento, got %q", updated.Status)
	}
	if len(updated.Moments) != 1 || updated.Moments[0].ReportedAt.IsZero() {
		t.Fatalf("expected one stamped moment, got %+v", updated.Moments)
	}

	// The cascade touches the open delivery on the route and nothing else.
	d, _ := deliveries.GetByID(ctx, onRoute.ID)
	if d.Status != entities.DeliveryStatusEmPercurso {
		t.Fatalf("expected em_percurso, got %q", d.Status)
	}
	d, _ = deliveries.GetByID(ctx, done.ID)
	if d.Status != entities.DeliveryStatusEntregue {
		t.Fatalf("terminal delivery must not change, got %q", d.Status)
	}
	d, _ = deliveries.GetByID(ctx, offRoute.ID)
	if d.Status != entities.DeliveryStatusPendente {
		t.Fatalf("off-route delivery must not change, got %q", d.Status)
	}

	updated, err = routes.RegisterMoment(ctx, route.ID, entities.Moment{Type: entities.MomentEntrega, DriverID: "E001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != entities.RouteStatusConcluida {
		t.Fatalf("expected concluida, got %q", updated.Status)
	}
	d, _ = deliveries.GetByID(ctx, onRoute.ID)
	if d.Status != entities.DeliveryStatusEntregue {
		t.Fatalf("expected entregue after entrega moment, got %q", d.Status)
	}
}
