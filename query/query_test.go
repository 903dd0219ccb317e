package query_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"lazyq/cursor"
	"lazyq/query"
)

func isEven(v int) bool { return v%2 == 0 }

func TestSelect_Identity(t *testing.T) {
	input := []int{5, 3, 5, 1, 2}
	got := query.Select(query.From(input), func(v int) int { return v }).ToSlice()
	if !slices.Equal(got, input) {
		t.Errorf("Identity mismatch: got %v, want %v", got, input)
	}
}

func TestWhere(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	gt3 := func(v int) bool { return v > 3 }

	tests := []struct {
		name string
		q    query.Query[int]
		want []int
	}{
		{"Single", query.From(input).Where(isEven), []int{2, 4, 6, 8}},
		{"Idempotent", query.From(input).Where(isEven).Where(isEven), []int{2, 4, 6, 8}},
		{"Conjunction", query.From(input).Where(isEven).Where(gt3), []int{4, 6, 8}},
		{"Commuted", query.From(input).Where(gt3).Where(isEven), []int{4, 6, 8}},
		{"NoneKept", query.From(input).Where(func(int) bool { return false }), []int{}},
		{"EmptyInput", query.Empty[int]().Where(isEven), []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.ToSlice(); !slices.Equal(got, tt.want) {
				t.Errorf("Where mismatch: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWhere_ShortCircuitOrder(t *testing.T) {
	var seen []int
	q := query.Range(1, 10).
		Where(isEven).
		Where(func(v int) bool {
			seen = append(seen, v)
			return true
		})

	q.Count()
	for _, v := range seen {
		if !isEven(v) {
			t.Errorf("second predicate saw %d rejected by the first", v)
		}
	}
}

func TestSelect_Composition(t *testing.T) {
	f := func(v int) int { return v + 1 }
	g := func(v int) string { return fmt.Sprintf("<%d>", v) }

	src := query.Range(0, 4)
	chained := query.Select(query.Select(src, f), g).ToSlice()
	composed := query.Select(src, func(v int) string { return g(f(v)) }).ToSlice()

	if !slices.Equal(chained, composed) {
		t.Errorf("Composition mismatch: got %v, want %v", chained, composed)
	}
	if want := []string{"<1>", "<2>", "<3>", "<4>"}; !slices.Equal(chained, want) {
		t.Errorf("Select mismatch: got %v, want %v", chained, want)
	}
}

func TestSelectWhere_Fusion(t *testing.T) {
	t.Run("WhereThenSelect", func(t *testing.T) {
		loads := 0
		q := query.Select(query.Range(1, 6).Where(isEven), func(v int) int {
			loads++
			return v * 10
		})
		if got := q.ToSlice(); !slices.Equal(got, []int{20, 40, 60}) {
			t.Errorf("Fused mismatch: got %v", got)
		}
		if loads != 3 {
			t.Errorf("loader ran %d times, want 3", loads)
		}
	})

	t.Run("SelectThenWhere", func(t *testing.T) {
		// the filter sees projected values
		q := query.Select(query.Range(1, 6), func(v int) int { return v * 3 }).
			Where(isEven)
		if got := q.ToSlice(); !slices.Equal(got, []int{6, 12, 18}) {
			t.Errorf("Demoted mismatch: got %v", got)
		}
	})

	t.Run("SelectWhereThenWhere", func(t *testing.T) {
		q := query.Select(query.Range(1, 10).Where(isEven), func(v int) int { return v + 1 }).
			Where(func(v int) bool { return v > 4 })
		if got := q.ToSlice(); !slices.Equal(got, []int{5, 7, 9, 11}) {
			t.Errorf("Fused filter mismatch: got %v", got)
		}
	})

	t.Run("CountDoesNotProject", func(t *testing.T) {
		loads := 0
		q := query.Select(query.Range(0, 5), func(v int) int {
			loads++
			return v
		})
		if n := q.Count(); n != 5 {
			t.Errorf("Count = %d, want 5", n)
		}
		if loads != 0 {
			t.Errorf("Count ran the loader %d times", loads)
		}
	})
}

func TestTake(t *testing.T) {
	input := []int{1, 2, 3, 4}

	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"Zero", 0, []int{}},
		{"Negative", -3, []int{}},
		{"Partial", 2, []int{1, 2}},
		{"Exact", 4, []int{1, 2, 3, 4}},
		{"Beyond", 10, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := query.From(input).Take(tt.n).ToSlice(); !slices.Equal(got, tt.want) {
				t.Errorf("Take(%d) mismatch: got %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestTake_KeepsSmallerBound(t *testing.T) {
	src := query.Range(0, 10)
	if got := src.Take(5).Take(8).ToSlice(); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Take(5).Take(8) mismatch: got %v", got)
	}
	if got := src.Take(5).Take(2).ToSlice(); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("Take(5).Take(2) mismatch: got %v", got)
	}
}

func TestTake_Repeatable(t *testing.T) {
	q := query.Range(0, 10).Where(isEven).Take(3)
	first := q.ToSlice()
	second := q.ToSlice()
	if !slices.Equal(first, second) || !slices.Equal(first, []int{0, 2, 4}) {
		t.Errorf("Traversals differ: %v then %v", first, second)
	}
}

func TestTake_WhereAfterTake(t *testing.T) {
	got := query.Range(1, 10).Take(4).Where(isEven).ToSlice()
	if !slices.Equal(got, []int{2, 4}) {
		t.Errorf("Take then Where mismatch: got %v", got)
	}
}

func TestTakeWhile(t *testing.T) {
	got := query.From([]int{1, 2, 3, 10, 4}).TakeWhile(func(v int) bool { return v < 5 }).ToSlice()
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("TakeWhile mismatch: got %v", got)
	}
}

func TestSkip(t *testing.T) {
	input := []int{1, 2, 3, 4}

	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"Zero", 0, []int{1, 2, 3, 4}},
		{"Negative", -1, []int{1, 2, 3, 4}},
		{"Partial", 3, []int{4}},
		{"Exact", 4, []int{}},
		{"Beyond", 9, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := query.From(input).Skip(tt.n).ToSlice(); !slices.Equal(got, tt.want) {
				t.Errorf("Skip(%d) mismatch: got %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestSkip_IsEager(t *testing.T) {
	calls := 0
	q := query.Range(0, 6).Where(func(v int) bool {
		calls++
		return true
	})
	before := calls
	skipped := q.Skip(3)
	if calls == before {
		t.Error("Skip did not traverse at call time")
	}
	if got := skipped.ToSlice(); !slices.Equal(got, []int{3, 4, 5}) {
		t.Errorf("Skip mismatch: got %v", got)
	}
}

func TestSkipWhile(t *testing.T) {
	got := query.From([]int{1, 2, 5, 1, 2}).SkipWhile(func(v int) bool { return v < 3 }).ToSlice()
	if !slices.Equal(got, []int{5, 1, 2}) {
		t.Errorf("SkipWhile mismatch: got %v", got)
	}
	if n := query.Range(0, 3).SkipWhile(func(int) bool { return true }).Count(); n != 0 {
		t.Errorf("SkipWhile over all elements left %d", n)
	}
}

func TestScenarioA(t *testing.T) {
	q := query.Select(query.From([]int{5, 3, 5, 1, 2}).Where(func(v int) bool { return v > 1 }),
		func(v int) int { return v * 2 })
	got := query.Sorted(q).ToSlice()
	if want := []int{4, 6, 10, 10}; !slices.Equal(got, want) {
		t.Errorf("Scenario A mismatch: got %v, want %v", got, want)
	}
}

func TestScenarioC(t *testing.T) {
	src := query.From([]int{1, 2, 3, 4})
	inc := func(v int) int { return v + 1 }

	if got := src.Take(2).ToSlice(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Take(2) mismatch: got %v", got)
	}
	if got := query.Select(src.Take(2), inc).ToSlice(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("Take(2).Select mismatch: got %v", got)
	}
	if got := query.Select(src, inc).Take(2).ToSlice(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("Select.Take(2) mismatch: got %v", got)
	}
}

func TestSources(t *testing.T) {
	if got := query.Range(3, 4).ToSlice(); !slices.Equal(got, []int{3, 4, 5, 6}) {
		t.Errorf("Range mismatch: got %v", got)
	}
	if n := query.Range(3, -4).Count(); n != 0 {
		t.Errorf("Range with negative count produced %d", n)
	}
	if got := query.Repeat("x", 3).ToSlice(); !slices.Equal(got, []string{"x", "x", "x"}) {
		t.Errorf("Repeat mismatch: got %v", got)
	}
	if got := query.FromSeq(slices.Values([]int{7, 8})).ToSlice(); !slices.Equal(got, []int{7, 8}) {
		t.Errorf("FromSeq mismatch: got %v", got)
	}

	begin, end := cursor.ReverseSpan([]int{1, 2, 3})
	if got := query.FromRange[int](begin, end).ToSlice(); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("FromRange mismatch: got %v", got)
	}

	c := cursor.Over([]int{1, 2, 3})
	_ = c.Next()
	q := query.FromCursor[int](c)
	_ = c.Next()
	if got := q.ToSlice(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("FromCursor mismatch: got %v", got)
	}

	var zero query.Query[int]
	if n := zero.Where(isEven).Take(3).Count(); n != 0 {
		t.Errorf("zero Query produced %d elements", n)
	}
}

func TestBorrowedSource(t *testing.T) {
	input := []int{1, 2, 3}
	q := query.From(input)
	input[0] = 100
	if got, _ := q.First(); got != 100 {
		t.Errorf("From should borrow the slice: got %d", got)
	}
}

func TestCount(t *testing.T) {
	q := query.Range(0, 100).Where(func(v int) bool { return v%3 == 0 })
	manual := 0
	for range q.Values() {
		manual++
	}
	if n := q.Count(); n != manual || n != 34 {
		t.Errorf("Count = %d, manual = %d, want 34", n, manual)
	}
}

func TestValues_EarlyStop(t *testing.T) {
	var got []int
	for v := range query.Range(0, 100).Values() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("Values mismatch: got %v", got)
	}

	var idx []int
	for i, v := range query.From([]string{"a", "b"}).All() {
		idx = append(idx, i)
		_ = v
	}
	if !slices.Equal(idx, []int{0, 1}) {
		t.Errorf("All indexes mismatch: got %v", idx)
	}
}

func TestCursor(t *testing.T) {
	c := query.Range(0, 2).Cursor()
	if v, err := c.Value(); err != nil || v != 0 {
		t.Fatalf("Value() = %d, %v", v, err)
	}
	_ = c.Next()
	_ = c.Next()
	if _, err := c.Value(); !errors.Is(err, cursor.ErrEndOfSequence) {
		t.Errorf("Value() at end error mismatch: got %v", err)
	}
	if err := c.Next(); !errors.Is(err, cursor.ErrEndOfSequence) {
		t.Errorf("Next() at end error mismatch: got %v", err)
	}
}
