package query_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"lazyq/cursor"
	"lazyq/query"
)

func TestAggregates(t *testing.T) {
	q := query.From([]int{4, -2, 9, 9, 0})

	if got := query.Sum(q); got != 20 {
		t.Errorf("Sum = %d, want 20", got)
	}
	if got, err := query.Min(q); err != nil || got != -2 {
		t.Errorf("Min = %d, %v; want -2", got, err)
	}
	if got, err := query.Max(q); err != nil || got != 9 {
		t.Errorf("Max = %d, %v; want 9", got, err)
	}
	if got, err := query.Average(q); err != nil || got != 4 {
		t.Errorf("Average = %v, %v; want 4", got, err)
	}
	if got, err := q.First(); err != nil || got != 4 {
		t.Errorf("First = %d, %v", got, err)
	}
	if got, err := q.Last(); err != nil || got != 0 {
		t.Errorf("Last = %d, %v", got, err)
	}
	if got, err := q.ElementAt(2); err != nil || got != 9 {
		t.Errorf("ElementAt(2) = %d, %v", got, err)
	}
	if !query.Contains(q, 0) || query.Contains(q, 5) {
		t.Error("Contains mismatch")
	}
	if !q.Any(func(v int) bool { return v < 0 }) || q.Every(func(v int) bool { return v < 0 }) {
		t.Error("Any/Every mismatch")
	}
}

func TestAggregates_Empty(t *testing.T) {
	q := query.Range(0, 10).Where(func(v int) bool { return v > 100 })

	if got := query.Sum(q); got != 0 {
		t.Errorf("Sum of empty = %d, want 0", got)
	}
	if _, err := query.Min(q); !errors.Is(err, query.ErrEmptySequence) {
		t.Errorf("Min error mismatch: got %v", err)
	}
	if _, err := query.Max(q); !errors.Is(err, query.ErrEmptySequence) {
		t.Errorf("Max error mismatch: got %v", err)
	}
	if _, err := query.Average(q); !errors.Is(err, query.ErrEmptySequence) {
		t.Errorf("Average error mismatch: got %v", err)
	}
	if _, err := q.First(); !errors.Is(err, query.ErrEmptySequence) {
		t.Errorf("First error mismatch: got %v", err)
	}
	if _, err := q.Last(); !errors.Is(err, query.ErrEmptySequence) {
		t.Errorf("Last error mismatch: got %v", err)
	}
	if !q.Every(func(int) bool { return false }) {
		t.Error("Every on empty should hold")
	}
}

func TestElementAt_OutOfRange(t *testing.T) {
	q := query.Range(0, 3)
	for _, i := range []int{-1, 3, 10} {
		if _, err := q.ElementAt(i); !errors.Is(err, cursor.ErrEndOfSequence) {
			t.Errorf("ElementAt(%d) error mismatch: got %v", i, err)
		}
	}
}

func TestMinMaxFunc_FirstWins(t *testing.T) {
	words := query.From([]string{"bb", "a", "cc", "d"})
	byLen := func(a, b string) int { return len(a) - len(b) }

	if got, _ := words.MinFunc(byLen); got != "a" {
		t.Errorf("MinFunc = %q, want a", got)
	}
	if got, _ := words.MaxFunc(byLen); got != "bb" {
		t.Errorf("MaxFunc = %q, want bb", got)
	}
	if got, _ := query.Max(words); got != "d" {
		t.Errorf("Max = %q, want d", got)
	}
	if got, _ := words.MinFunc(strings.Compare); got != "a" {
		t.Errorf("MinFunc(Compare) = %q, want a", got)
	}
}

func TestSum_Float(t *testing.T) {
	got := query.Sum(query.Select(query.Range(1, 4), func(v int) float64 { return float64(v) / 2 }))
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("Sum = %v, want 5", got)
	}
}

func TestSinks(t *testing.T) {
	q := query.Range(1, 3)
	if got := q.AppendTo([]int{0}); len(got) != 4 || got[0] != 0 || got[3] != 3 {
		t.Errorf("AppendTo mismatch: got %v", got)
	}
	if got := query.Empty[int]().ToSlice(); got == nil || len(got) != 0 {
		t.Errorf("ToSlice of empty should be a non-nil empty slice, got %#v", got)
	}

	var seen []int
	q.Each(func(v int) { seen = append(seen, v) })
	if len(seen) != 3 {
		t.Errorf("Each visited %d elements", len(seen))
	}
}
