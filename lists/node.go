package lists

// Node is a position in a LinkedList. It satisfies cursor.Position, so a
// pair of nodes bounds a range that queries can walk.
//
// A Node stays usable while its element is in the list. Once the element
// is removed its successor is the zero Node.
type Node[T any] struct {
	n *node[T]
}

// Begin returns the position of the first element, or End for an empty list.
func (ll *LinkedList[T]) Begin() Node[T] {
	return Node[T]{n: ll.headSentinel.next}
}

// End returns the position past the last element.
func (ll *LinkedList[T]) End() Node[T] {
	return Node[T]{n: ll.tailSentinel}
}

// At returns the position of the element at index.
func (ll *LinkedList[T]) At(index int) (Node[T], error) {
	if index < 0 || index > ll.size {
		return Node[T]{}, ErrIndexOutOfBounds
	}
	return Node[T]{n: ll.findNodeAt(index)}, nil
}

func (p Node[T]) Get() T { return p.n.val }
func (p Node[T]) Succ() Node[T] { return Node[T]{n: p.n.next} }
func (p Node[T]) Equal(o Node[T]) bool { return p.n == o.n }
