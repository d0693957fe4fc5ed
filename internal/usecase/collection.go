package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"frota_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("record not found")
)

// Entity is the constraint every stored record satisfies: it knows its own
// id and can produce a copy with a different one.
type Entity[T any] interface {
	EntityID() string
	WithEntityID(id string) T
}

// UniqueKey is one uniqueness constraint checked at create time. Normalize
// maps raw values into the comparison space (lowercase for ids and emails,
// digits-only for CPF/CNPJ documents).
type UniqueKey[T any] struct {
	Name      string
	Value     func(T) string
	Normalize func(string) string
}

func NormalizeID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeDocument strips everything but digits, so "123.456.789-00" and
// "12345678900" collide.
func NormalizeDocument(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IDStrategy produces an id for a record created without one. Two schemes
// coexist in the back-office: zero-padded sequential ids for fleet entities
// and timestamp+random ids for high-churn records like deliveries and logs.
type IDStrategy[T any] func(existing []T) string

// SequentialID yields prefix + zero-padded counter (T01, T02, ...), scanning
// existing ids for the highest suffix.
func SequentialID[T Entity[T]](prefix string, width int) IDStrategy[T] {
	return func(existing []T) string {
		max := 0
		for _, rec := range existing {
			id := rec.EntityID()
			if !strings.HasPrefix(id, prefix) {
				continue
			}
			if n, err := strconv.Atoi(id[len(prefix):]); err == nil && n > max {
				max = n
			}
		}
		return fmt.Sprintf("%s%0*d", prefix, width, max+1)
	}
}

// TimestampID yields prefix + unix-millis + short random suffix.
func TimestampID[T any](prefix string) IDStrategy[T] {
	return func([]T) string {
		suffix := uuid.NewString()[:8]
		return fmt.Sprintf("%s%d-%s", prefix, time.Now().UnixMilli(), suffix)
	}
}

// Collection is the generic manager for one named collection: load, CRUD,
// and lookups, always persisting the full array back. There is no locking
// across writers; concurrent full-array rewrites follow last-writer-wins,
// which is a known limitation of this storage model.
type Collection[T Entity[T]] struct {
	store interfaces.Store
	name  string
	newID IDStrategy[T]
	keys  []UniqueKey[T]
}

func NewCollection[T Entity[T]](store interfaces.Store, name string, newID IDStrategy[T], keys ...UniqueKey[T]) *Collection[T] {
	return &Collection[T]{store: store, name: name, newID: newID, keys: keys}
}

func (c *Collection[T]) Name() string { return c.name }

// Load returns the current records. Absent, malformed, or non-array content
// all coerce to an empty slice; storage problems never surface here.
func (c *Collection[T]) Load(ctx context.Context) []T {
	raw, err := c.store.Get(ctx, c.name)
	if err != nil || len(raw) == 0 {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return []T{}
	}
	return records
}

func (c *Collection[T]) persist(ctx context.Context, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.store.Put(ctx, c.name, raw)
}

// Replace overwrites the whole collection. Used by the log archiver, which
// manages its own ordering and capping.
func (c *Collection[T]) Replace(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	return c.persist(ctx, records)
}

// Create appends a record after checking every uniqueness key (id included,
// case-insensitively) against the existing records. A blank id is filled in
// by the collection's id strategy.
func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	records := c.Load(ctx)

	if rec.EntityID() == "" {
		rec = rec.WithEntityID(c.newID(records))
	}

	newID := NormalizeID(rec.EntityID())
	for _, existing := range records {
		if NormalizeID(existing.EntityID()) == newID {
			return zero, fmt.Errorf("%w: id", ErrDuplicateKey)
		}
	}
	for _, key := range c.keys {
		want := key.Value(rec)
		if key.Normalize != nil {
			want = key.Normalize(want)
		}
		if want == "" {
			continue
		}
		for _, existing := range records {
			have := key.Value(existing)
			if key.Normalize != nil {
				have = key.Normalize(have)
			}
			if have == want {
				return zero, fmt.Errorf("%w: %s", ErrDuplicateKey, key.Name)
			}
		}
	}

	records = append(records, rec)
	if err := c.persist(ctx, records); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update replaces the matching record with merge(current) and rewrites the
// whole array.
func (c *Collection[T]) Update(ctx context.Context, id string, merge func(T) T) (T, error) {
	var zero T
	records := c.Load(ctx)
	want := NormalizeID(id)
	for i, rec := range records {
		if NormalizeID(rec.EntityID()) != want {
			continue
		}
		updated := merge(rec)
		// The id is not editable through a patch.
		updated = updated.WithEntityID(rec.EntityID())
		records[i] = updated
		if err := c.persist(ctx, records); err != nil {
			return zero, err
		}
		return updated, nil
	}
	return zero, ErrNotFound
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	records := c.Load(ctx)
	want := NormalizeID(id)
	for i, rec := range records {
		if NormalizeID(rec.EntityID()) != want {
			continue
		}
		records = append(records[:i], records[i+1:]...)
		return c.persist(ctx, records)
	}
	return ErrNotFound
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (T, bool) {
	var zero T
	want := NormalizeID(id)
	for _, rec := range c.Load(ctx) {
		if NormalizeID(rec.EntityID()) == want {
			return rec, true
		}
	}
	return zero, false
}

func (c *Collection[T]) FindAll(ctx context.Context, pred func(T) bool) []T {
	records := c.Load(ctx)
	if pred == nil {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}
