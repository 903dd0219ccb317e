package lists

import (
	"fmt"
	"iter"
	"strings"

	"lazyq/query"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked List with head and tail sentinels.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// insertAfter links newNode after at.
func (ll *LinkedList[T]) insertAfter(at, newNode *node[T]) {
	newNode.prev = at
	newNode.next = at.next
	at.next.prev = newNode
	at.next = newNode
	ll.size++
}

// findNodeAt assumes 0 <= index <= ll.size; index == ll.size yields the tail sentinel.
func (ll *LinkedList[T]) findNodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tailSentinel
	}
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// unlink detaches target and clears its pointers so stale positions stop at it.
func (ll *LinkedList[T]) unlink(target *node[T]) T {
	target.prev.next = target.next
	target.next.prev = target.prev
	res := target.val
	target.prev = nil
	target.next = nil
	var zero T
	target.val = zero
	ll.size--
	return res
}

// Add appends values to the end of the list.
func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.insertAfter(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

// AddFirst prepends value to the list.
func (ll *LinkedList[T]) AddFirst(value T) {
	ll.insertAfter(ll.headSentinel, &node[T]{val: value})
}

func (ll *LinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index > ll.size {
		return ErrIndexOutOfBounds
	}
	ll.insertAfter(ll.findNodeAt(index).prev, &node[T]{val: value})
	return nil
}

func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, ErrIndexOutOfBounds
	}
	return ll.findNodeAt(index).val, nil
}

func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return ErrIndexOutOfBounds
	}
	ll.findNodeAt(index).val = value
	return nil
}

func (ll *LinkedList[T]) Remove(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, ErrIndexOutOfBounds
	}
	return ll.unlink(ll.findNodeAt(index)), nil
}

// RemoveIf removes all elements satisfying predicate and returns how many were removed.
func (ll *LinkedList[T]) RemoveIf(predicate func(T) bool) int {
	removed := 0
	for current := ll.headSentinel.next; current != ll.tailSentinel; {
		next := current.next
		if predicate(current.val) {
			ll.unlink(current)
			removed++
		}
		current = next
	}
	return removed
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	var zero T
	for current := ll.headSentinel.next; current != ll.tailSentinel; {
		next := current.next
		current.prev = nil
		current.next = nil
		current.val = zero
		current = next
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.size = 0
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

// Query walks the nodes of the list without copying them.
func (ll *LinkedList[T]) Query() query.Query[T] {
	return query.FromRange[T](ll.Begin(), ll.End())
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		fmt.Fprintf(&sb, "%v", current.val)
		if current.next != ll.tailSentinel {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
