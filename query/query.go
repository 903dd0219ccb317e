package query

import (
	"iter"
	"slices"
	"time"

	"lazyq/cursor"
)

// Query is a lazily evaluated sequence of T.
//
// The zero value is an empty query. Queries are values; copying one is cheap
// and never duplicates the underlying data.
type Query[T any] struct {
	s stage[T]
}

func (q Query[T]) get() stage[T] {
	if q.s == nil {
		return &rootStage[T]{begin: cursor.Over[T](nil)}
	}
	return q.s
}

// From returns a query over items. The slice is borrowed, not copied.
func From[T any](items []T) Query[T] {
	return Query[T]{s: &rootStage[T]{begin: cursor.Over(items)}}
}

// FromRange returns a query over the positions [begin, end).
func FromRange[T any, P cursor.Position[P, T]](begin, end P) Query[T] {
	return Query[T]{s: &rootStage[T]{begin: cursor.NewBasic[T](begin, end)}}
}

// FromCursor returns a query that traverses clones of c from its current position.
func FromCursor[T any](c cursor.Cursor[T]) Query[T] {
	return Query[T]{s: &rootStage[T]{begin: c.Clone()}}
}

// FromSeq drains seq into an owned slice and returns a query over it.
// Unlike the other constructors it pays the traversal cost immediately.
func FromSeq[T any](seq iter.Seq[T]) Query[T] {
	start := time.Now()
	items := slices.Collect(seq)
	logMaterialized("from_seq", len(items), start)
	return From(items)
}

// Empty returns a query with no elements.
func Empty[T any]() Query[T] {
	return Query[T]{}
}

// Range returns the count consecutive integers starting at start.
func Range(start, count int) Query[int] {
	return FromRange[int](cursor.Counter(start), cursor.Counter(start+max(count, 0)))
}

// Repeat returns a query yielding v count times.
func Repeat[T any](v T, count int) Query[T] {
	begin, end := cursor.Repeat(v, count)
	return FromRange[T](begin, end)
}

// Where returns the elements for which keep reports true. Consecutive Where
// calls are combined into one filter evaluated left to right.
func (q Query[T]) Where(keep func(T) bool) Query[T] {
	return Query[T]{s: q.get().where(keep)}
}

// Take returns at most n elements. Taking from a Take result keeps the
// smaller of the two bounds.
func (q Query[T]) Take(n int) Query[T] {
	return Query[T]{s: q.get().take(n)}
}

// TakeWhile returns elements up to, not including, the first one rejected by keep.
func (q Query[T]) TakeWhile(keep func(T) bool) Query[T] {
	return Query[T]{s: &untilStage[T]{inner: q.get(), keep: keep}}
}

// Skip advances past n elements immediately and returns a query rooted at
// the resulting position.
func (q Query[T]) Skip(n int) Query[T] {
	start := time.Now()
	c := q.get().open()
	steps := cursor.Advance(c, n)
	logMaterialized("skip", steps, start)
	return Query[T]{s: &rootStage[T]{begin: c}}
}

// SkipWhile advances past the leading elements accepted by skip immediately
// and returns a query rooted at the first rejected one.
func (q Query[T]) SkipWhile(skip func(T) bool) Query[T] {
	start := time.Now()
	c := q.get().open()
	steps := cursor.SkipWhile(c, skip)
	logMaterialized("skip_while", steps, start)
	return Query[T]{s: &rootStage[T]{begin: c}}
}

// Cursor returns a fresh cursor at the start of the query.
func (q Query[T]) Cursor() cursor.Cursor[T] {
	return q.get().open()
}

// Values returns an iterator over the elements of q.
func (q Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range cursor.Values(q.get().open()) {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over the elements of q and their positions.
func (q Query[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range q.Values() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Each calls fn for every element in order.
func (q Query[T]) Each(fn func(T)) {
	for v := range q.Values() {
		fn(v)
	}
}
