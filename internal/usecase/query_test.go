package usecase

import (
	"testing"
	"time"

	"frota_backoffice/internal/domain/entities"
)

func TestFilterBySearchTerm(t *testing.T) {
	trucks := []entities.Truck{
		{ID: "T01", Plate: "ABC-1234", Model: "Volvo FH"},
		{ID: "T02", Plate: "DEF-5678", Model: "Scania R450"},
	}
	plate := func(tr entities.Truck) string { return tr.Plate }
	model := func(tr entities.Truck) string { return tr.Model }

	t.Run("empty term is identity", func(t *testing.T) {
		if got := FilterBySearchTerm(trucks, "   ", plate, model); len(got) != 2 {
			t.Fatalf("expected all records, got %d", len(got))
		}
	})

	t.Run("matches any field case-insensitively", func(t *testing.T) {
		got := FilterBySearchTerm(trucks, "volvo", plate, model)
		if len(got) != 1 || got[0].ID != "T01" {
			t.Fatalf("expected T01, got %+v", got)
		}
	})

	t.Run("no double count on multi-field match", func(t *testing.T) {
		got := FilterBySearchTerm(trucks, "5", plate, model)
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
	})
}

func TestFilterByExactField(t *testing.T) {
	trucks := []entities.Truck{
		{ID: "T01", Status: entities.TruckStatusDisponivel},
		{ID: "T02", Status: entities.TruckStatusManutencao},
	}
	status := func(tr entities.Truck) string { return string(tr.Status) }

	for _, identity := range []string{"", "all"} {
		if got := FilterByExactField(trucks, identity, status); len(got) != 2 {
			t.Fatalf("expected %q to keep all records, got %d", identity, len(got))
		}
	}

	got := FilterByExactField(trucks, "manutencao", status)
	if len(got) != 1 || got[0].ID != "T02" {
		t.Fatalf("expected T02, got %+v", got)
	}
}

func TestFilterByDateRange(t *testing.T) {
	deliveries := []entities.Delivery{
		{ID: "D1", Date: "2026-01-10"},
		{ID: "D2", Date: "2026-02-15"},
		{ID: "D3", Date: "2026-03-20"},
	}
	date := func(d entities.Delivery) string { return d.Date }

	t.Run("open bounds", func(t *testing.T) {
		if got := FilterByDateRange(deliveries, "", "", date); len(got) != 3 {
			t.Fatalf("expected all records, got %d", len(got))
		}
	})

	t.Run("inclusive range", func(t *testing.T) {
		got := FilterByDateRange(deliveries, "2026-02-15", "2026-03-20", date)
		if len(got) != 2 || got[0].ID != "D2" {
			t.Fatalf("expected D2 and D3, got %+v", got)
		}
	})

	t.Run("start only", func(t *testing.T) {
		got := FilterByDateRange(deliveries, "2026-03-01", "", date)
		if len(got) != 1 || got[0].ID != "D3" {
			t.Fatalf("expected D3, got %+v", got)
		}
	})
}

func TestCountByAndSumBy(t *testing.T) {
	deliveries := []entities.Delivery{
		{Status: entities.DeliveryStatusPendente, TotalValue: 100, Discount: 10},
		{Status: entities.DeliveryStatusPendente, TotalValue: 50},
		{Status: entities.DeliveryStatusEntregue, TotalValue: 200, Discount: 20},
	}

	counts := CountBy(deliveries, func(d entities.Delivery) string { return string(d.Status) })
	if counts["pendente"] != 2 || counts["entregue"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	revenue := SumBy(deliveries, entities.Delivery.Revenue)
	if revenue != 320 {
		t.Fatalf("expected revenue 320, got %v", revenue)
	}
}

func TestSortByDate(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	logs := []entities.ChatActionLog{
		{ID: "b", CreatedAt: base.Add(time.Minute)},
		{ID: "a", CreatedAt: base},
		{ID: "c", CreatedAt: base.Add(2 * time.Minute)},
	}
	at := func(l entities.ChatActionLog) time.Time { return l.CreatedAt }

	desc := SortByDateDesc(logs, at)
	if desc[0].ID != "c" || desc[2].ID != "a" {
		t.Fatalf("unexpected desc order: %+v", desc)
	}

	asc := SortByDateAsc(logs, at)
	if asc[0].ID != "a" || asc[2].ID != "c" {
		t.Fatalf("unexpected asc order: %+v", asc)
	}

	// The inputs are copies; the original slice keeps its order.
	if logs[0].ID != "b" {
		t.Fatalf("input slice mutated: %+v", logs)
	}
}
