package query

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"

	"lazyq/cursor"
)

// Number is the set of element types Sum and Average accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Count traverses q and returns the number of elements produced.
func (q Query[T]) Count() int {
	n := 0
	for c := q.get().open(); !c.Done(); _ = c.Next() {
		n++
	}
	return n
}

// First returns the first element, or ErrEmptySequence.
func (q Query[T]) First() (T, error) {
	v, err := q.get().open().Value()
	if err != nil {
		return v, ErrEmptySequence
	}
	return v, nil
}

// Last returns the last element, or ErrEmptySequence.
func (q Query[T]) Last() (last T, err error) {
	found := false
	for v := range q.Values() {
		last, found = v, true
	}
	if !found {
		return last, ErrEmptySequence
	}
	return last, nil
}

// ElementAt returns the element at position i, or an error wrapping
// cursor.ErrEndOfSequence when q has no such position.
func (q Query[T]) ElementAt(i int) (v T, err error) {
	if i < 0 {
		return v, fmt.Errorf("%w: negative index %d", cursor.ErrEndOfSequence, i)
	}
	c := q.get().open()
	cursor.Advance(c, i)
	v, err = c.Value()
	if err != nil {
		return v, fmt.Errorf("%w: index %d", err, i)
	}
	return v, nil
}

// Any reports whether pred holds for at least one element. It stops at the first match.
func (q Query[T]) Any(pred func(T) bool) bool {
	for v := range q.Values() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Every reports whether pred holds for all elements. An empty query satisfies any pred.
func (q Query[T]) Every(pred func(T) bool) bool {
	for v := range q.Values() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// MinFunc returns the smallest element under compare. Among equal elements
// the first one wins.
func (q Query[T]) MinFunc(compare func(a, b T) int) (T, error) {
	return q.fold(func(best, v T) bool { return compare(v, best) < 0 })
}

// MaxFunc returns the largest element under compare. Among equal elements
// the first one wins.
func (q Query[T]) MaxFunc(compare func(a, b T) int) (T, error) {
	return q.fold(func(best, v T) bool { return compare(v, best) > 0 })
}

// fold is a single pass seeded from the first element.
func (q Query[T]) fold(better func(best, v T) bool) (best T, err error) {
	c := q.get().open()
	best, err = c.Value()
	if err != nil {
		return best, ErrEmptySequence
	}
	for _ = c.Next(); !c.Done(); _ = c.Next() {
		v, _ := c.Value()
		if better(best, v) {
			best = v
		}
	}
	return best, nil
}

// Min returns the smallest element of q, or ErrEmptySequence.
func Min[T cmp.Ordered](q Query[T]) (T, error) {
	return q.MinFunc(cmp.Compare[T])
}

// Max returns the largest element of q, or ErrEmptySequence.
func Max[T cmp.Ordered](q Query[T]) (T, error) {
	return q.MaxFunc(cmp.Compare[T])
}

// Sum adds up the elements of q, starting from zero.
func Sum[T Number](q Query[T]) T {
	var total T
	for v := range q.Values() {
		total += v
	}
	return total
}

// Average returns the arithmetic mean of q, or ErrEmptySequence.
func Average[T Number](q Query[T]) (float64, error) {
	var total float64
	n := 0
	for v := range q.Values() {
		total += float64(v)
		n++
	}
	if n == 0 {
		return 0, ErrEmptySequence
	}
	return total / float64(n), nil
}

// Contains reports whether v is produced by q.
func Contains[T comparable](q Query[T], v T) bool {
	return q.Any(func(x T) bool { return x == v })
}
