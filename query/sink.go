package query

import "slices"

// Appender is a caller-owned container that accepts produced elements.
// lists.ArrayList and lists.LinkedList satisfy it.
type Appender[T any] interface {
	Add(values ...T)
}

// To appends every element of q to dst in traversal order.
func (q Query[T]) To(dst Appender[T]) {
	for v := range q.Values() {
		dst.Add(v)
	}
}

// AppendTo appends every element of q to dst and returns the extended slice.
func (q Query[T]) AppendTo(dst []T) []T {
	return slices.AppendSeq(dst, q.Values())
}

// ToSlice returns the elements of q in a new slice.
func (q Query[T]) ToSlice() []T {
	return q.AppendTo([]T{})
}
