package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

var ErrUnknownCollection = errors.New("unknown collection")

var exportableCollections = map[string]bool{
	entities.CollectionTrucks:        true,
	entities.CollectionEmployees:     true,
	entities.CollectionCustomers:     true,
	entities.CollectionDeliveries:    true,
	entities.CollectionCities:        true,
	entities.CollectionProducts:      true,
	entities.CollectionRoutes:        true,
	entities.CollectionMaintenance:   true,
	entities.CollectionNotifications: true,
}

// ExportUseCase renders a collection as a downloadable CSV or pretty JSON
// document. It works on the raw stored records, so any entity shape exports
// without per-entity code.
type ExportUseCase struct {
	store interfaces.Store
}

func NewExportUseCase(store interfaces.Store) *ExportUseCase {
	return &ExportUseCase{store: store}
}

func (u *ExportUseCase) records(ctx context.Context, collection string) ([]map[string]any, error) {
	if !exportableCollections[collection] {
		return nil, ErrUnknownCollection
	}
	raw, err := u.store.Get(ctx, collection)
	if err != nil || len(raw) == 0 {
		return []map[string]any{}, nil
	}
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return []map[string]any{}, nil
	}
	return records, nil
}

// JSON exports the collection pretty-printed.
func (u *ExportUseCase) JSON(ctx context.Context, collection string) ([]byte, error) {
	records, err := u.records(ctx, collection)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(records, "", "  ")
}

// CSV exports the collection with a header row built from the union of all
// field names, "id" first and the rest alphabetical. Nested values are
// embedded as JSON. Quoting and escaping follow encoding/csv.
func (u *ExportUseCase) CSV(ctx context.Context, collection string) ([]byte, error) {
	records, err := u.records(ctx, collection)
	if err != nil {
		return nil, err
	}

	fieldSet := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			fieldSet[k] = true
		}
	}
	fields := make([]string, 0, len(fieldSet))
	for k := range fieldSet {
		if k != "id" {
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)
	if fieldSet["id"] {
		fields = append([]string{"id"}, fields...)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return nil, err
	}
	for _, rec := range records {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = csvCell(rec[f])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
