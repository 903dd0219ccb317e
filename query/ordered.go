package query

import (
	"cmp"
	"slices"
	"time"

	"lazyq/cursor"
	"lazyq/order"
)

// Ordered is the result of OrderBy: a query over an owned, sorted copy of
// its input. Copies of an Ordered share that copy.
type Ordered[T any] struct {
	Query[T]
	items []T
	desc  bool
}

// OrderBy traverses q once, copies its elements and sorts the copy by keys.
// The first key decides; each following key only breaks ties left by the
// previous ones. Elements whose keys all compare equal may appear in any
// order. With no keys the copy keeps traversal order.
func (q Query[T]) OrderBy(keys ...order.Key[T]) Ordered[T] {
	start := time.Now()
	items := q.ToSlice()
	if len(keys) > 0 {
		slices.SortFunc(items, order.Chain(keys...))
	}
	logMaterialized("order_by", len(items), start)
	return newOrdered(items, false)
}

// Sorted orders q by the natural order of its elements.
func Sorted[T cmp.Ordered](q Query[T]) Ordered[T] {
	return q.OrderBy(order.Natural[T]())
}

func newOrdered[T any](items []T, desc bool) Ordered[T] {
	if desc {
		begin, end := cursor.ReverseSpan(items)
		return Ordered[T]{Query: FromRange[T](begin, end), items: items, desc: true}
	}
	return Ordered[T]{Query: From(items), items: items}
}

// Asc traverses the sorted copy in the order OrderBy produced.
func (o Ordered[T]) Asc() Ordered[T] {
	return newOrdered(o.items, false)
}

// Desc traverses the same sorted copy back to front. Nothing is re-sorted.
func (o Ordered[T]) Desc() Ordered[T] {
	return newOrdered(o.items, true)
}

// IsDesc reports whether o traverses its copy back to front.
func (o Ordered[T]) IsDesc() bool {
	return o.desc
}
