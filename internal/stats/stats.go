// Package stats rolls up admin list records into display counters.
package stats

import "math"

// Count returns the number of records.
func Count[T any](records []T) int {
	return len(records)
}

// CountWhere returns the number of records matching pred.
func CountWhere[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// Sum adds field over records, skipping NaN and infinite values.
func Sum[T any](records []T, field func(T) float64) float64 {
	total := 0.0
	for _, r := range records {
		v := field(r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		total += v
	}
	return total
}

// Average returns the mean of field over records, or 0 for no records.
func Average[T any](records []T, field func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	return finite(Sum(records, field) / float64(len(records)))
}

// Ratio returns part/whole as a percentage, or 0 when whole is 0.
func Ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return finite(float64(part) * 100 / float64(whole))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Summary is a rollup keyed by counter name, as sent by the backend.
type Summary map[string]float64

// Resolve returns the backend value for key when present, else local().
func (s Summary) Resolve(key string, local func() float64) float64 {
	if v, ok := s[key]; ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return v
	}
	return finite(local())
}
