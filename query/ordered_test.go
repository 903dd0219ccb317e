package query_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"

	"lazyq/order"
	"lazyq/query"
)

type person struct {
	Name string
	Age  int
}

var people = []person{
	{"dave", 30},
	{"alice", 30},
	{"bob", 41},
	{"carol", 25},
}

func TestOrderBy(t *testing.T) {
	byAge := order.Asc(func(p person) int { return p.Age })
	byName := order.Asc(func(p person) string { return p.Name })

	got := query.From(people).OrderBy(byAge, byName).ToSlice()
	want := []person{{"carol", 25}, {"alice", 30}, {"dave", 30}, {"bob", 41}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OrderBy mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderBy_MixedDirections(t *testing.T) {
	got := query.From(people).OrderBy(
		order.Desc(func(p person) int { return p.Age }),
		order.Asc(func(p person) string { return p.Name }),
	).ToSlice()
	names := lo.Map(got, func(p person, _ int) string { return p.Name })
	if diff := cmp.Diff([]string{"bob", "alice", "dave", "carol"}, names); diff != "" {
		t.Errorf("OrderBy mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderBy_AscDesc(t *testing.T) {
	o := query.Sorted(query.From([]int{3, 1, 2}))

	if got := o.Desc().ToSlice(); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("Desc mismatch: got %v", got)
	}
	if got := o.Desc().Asc().ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Asc mismatch: got %v", got)
	}
	if !o.Desc().IsDesc() || o.IsDesc() {
		t.Error("IsDesc mismatch")
	}
}

func TestOrderBy_Permutation(t *testing.T) {
	input := lo.Shuffle(lo.Flatten([][]int{lo.Range(20), lo.Range(10)}))
	key := order.Desc(func(v int) int { return v })
	got := query.From(input).OrderBy(key).ToSlice()

	for i := 1; i < len(got); i++ {
		if key.Compare(got[i-1], got[i]) > 0 {
			t.Fatalf("out of order at %d: %v", i, got)
		}
	}
	sorted := slices.Clone(got)
	want := slices.Clone(input)
	slices.Sort(sorted)
	slices.Sort(want)
	if diff := cmp.Diff(want, sorted); diff != "" {
		t.Errorf("not a permutation (-want +got):\n%s", diff)
	}
}

func TestOrderBy_OwnsCopy(t *testing.T) {
	input := []int{2, 1}
	o := query.Sorted(query.From(input))
	input[0] = 99
	if got := o.ToSlice(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("OrderBy aliased its input: got %v", got)
	}
	if !slices.Equal(input, []int{99, 1}) {
		t.Errorf("OrderBy sorted its input in place: %v", input)
	}
}

func TestOrderBy_NoKeys(t *testing.T) {
	got := query.From([]int{3, 1, 2}).OrderBy().ToSlice()
	if !slices.Equal(got, []int{3, 1, 2}) {
		t.Errorf("OrderBy() mismatch: got %v", got)
	}
}

func TestOrderBy_Chained(t *testing.T) {
	got := query.Sorted(query.Range(0, 10)).Desc().Where(isEven).Take(2).ToSlice()
	if !slices.Equal(got, []int{8, 6}) {
		t.Errorf("chain after Desc mismatch: got %v", got)
	}
}
