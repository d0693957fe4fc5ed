package usecase

import (
	"sort"
	"strings"
	"time"
)

// Query helpers shared by every board screen. All of them are single-pass
// over in-memory slices; collections here hold at most a few thousand rows.

// FilterBySearchTerm keeps records where any listed field contains term,
// case-insensitively. An empty term is the identity.
func FilterBySearchTerm[T any](records []T, term string, fields ...func(T) string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(rec)), term) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// FilterByExactField keeps records whose field equals value. The values ""
// and "all" mean "no filter", the convention every screen uses for its
// dropdowns.
func FilterByExactField[T any](records []T, value string, field func(T) string) []T {
	if value == "" || value == "all" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if field(rec) == value {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByDateRange keeps records whose "YYYY-MM-DD" field falls within
// [start, end], compared lexicographically. An empty bound is open.
func FilterByDateRange[T any](records []T, start, end string, field func(T) string) []T {
	if start == "" && end == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		d := field(rec)
		if start != "" && d < start {
			continue
		}
		if end != "" && d > end {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// CountBy tallies records per field value.
func CountBy[T any](records []T, field func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[field(rec)]++
	}
	return counts
}

// SumBy totals fn over the records.
func SumBy[T any](records []T, fn func(T) float64) float64 {
	var total float64
	for _, rec := range records {
		total += fn(rec)
	}
	return total
}

// SortByDateDesc returns a copy sorted newest-first, stable for equal
// timestamps.
func SortByDateDesc[T any](records []T, at func(T) time.Time) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return at(out[i]).After(at(out[j]))
	})
	return out
}

// SortByDateAsc returns a copy sorted oldest-first, stable for equal
// timestamps. Conversations render in this order.
func SortByDateAsc[T any](records []T, at func(T) time.Time) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return at(out[i]).Before(at(out[j]))
	})
	return out
}
