package lists

import (
	"fmt"
	"iter"

	"lazyq/query"
)

var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

// List is the container contract shared by ArrayList and LinkedList.
// Both can act as the source of a query and as the destination of one.
type List[T any] interface {
	// Add appends values to the end of the list.
	Add(values ...T)

	// Insert inserts value at index.
	// Returns ErrIndexOutOfBounds if index < 0 or index > Size().
	Insert(index int, value T) error

	// Remove removes and returns the element at index.
	Remove(index int) (T, error)

	Get(index int) (T, error)
	Set(index int, value T) error

	Size() int
	IsEmpty() bool
	Clear()

	Values() iter.Seq[T]

	// Query returns a deferred query reading the list in place. The list
	// must not be modified while a traversal of the query is in progress.
	Query() query.Query[T]
}

// Collect drains q into a new list created by factory.
func Collect[T any, L List[T]](q query.Query[T], factory func() L) L {
	l := factory()
	q.To(l)
	return l
}
