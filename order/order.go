// Package order provides the key and direction tags consumed by OrderBy.
//
// A [Key] pairs a key extractor with a sort direction:
//
//	byAge := order.Desc(func(p Person) int { return p.Age })
//	byName := order.Asc(func(p Person) string { return p.Name })
//	q.OrderBy(byAge, byName)
//
// Keys are consulted in order; a later key only breaks ties left by the
// earlier ones.
package order

import "cmp"

// Direction is the sort direction of a Key.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Key compares two elements by an extracted key in a given direction.
type Key[T any] struct {
	compare func(a, b T) int
	dir     Direction
}

// Asc orders by key, smallest first.
func Asc[T any, K cmp.Ordered](key func(T) K) Key[T] {
	return AscFunc(key, cmp.Compare[K])
}

// Desc orders by key, largest first.
func Desc[T any, K cmp.Ordered](key func(T) K) Key[T] {
	return DescFunc(key, cmp.Compare[K])
}

// AscFunc orders by key using compare as the key's native ordering.
func AscFunc[T, K any](key func(T) K, compare func(a, b K) int) Key[T] {
	return Key[T]{
		compare: func(a, b T) int { return compare(key(a), key(b)) },
		dir:     Ascending,
	}
}

// DescFunc orders by key using compare, with the direction reversed.
func DescFunc[T, K any](key func(T) K, compare func(a, b K) int) Key[T] {
	k := AscFunc(key, compare)
	k.dir = Descending
	return k
}

// Natural orders elements by their own value, smallest first.
func Natural[T cmp.Ordered]() Key[T] {
	return Key[T]{compare: cmp.Compare[T]}
}

// Direction returns the direction of k.
func (k Key[T]) Direction() Direction {
	return k.dir
}

// Reverse returns k with the opposite direction.
func (k Key[T]) Reverse() Key[T] {
	if k.dir == Ascending {
		k.dir = Descending
	} else {
		k.dir = Ascending
	}
	return k
}

// Compare returns a negative number when a sorts before b under k, a positive
// number when it sorts after, and zero when their keys are equal.
func (k Key[T]) Compare(a, b T) int {
	if k.dir == Descending {
		return k.compare(b, a)
	}
	return k.compare(a, b)
}

// Chain builds a composite comparator: the first key decides unless it
// reports equality, in which case the next key is consulted, and so on.
// With no keys every pair compares equal.
func Chain[T any](keys ...Key[T]) func(a, b T) int {
	keys = append([]Key[T](nil), keys...)
	return func(a, b T) int {
		for _, k := range keys {
			if c := k.Compare(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}
