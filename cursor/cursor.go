package cursor

import "errors"

// ErrEndOfSequence is returned when a cursor is dereferenced or advanced at its end.
var ErrEndOfSequence = errors.New("cursor: end of sequence")

// Position is a raw location inside an underlying sequence.
//
// Positions are values: Succ returns the following position and leaves the
// receiver untouched. Get must not be called on an end position.
type Position[P any, T any] interface {
	Get() T
	Succ() P
	Equal(other P) bool
}

// Cursor is a traversal handle over a sequence of T.
type Cursor[T any] interface {
	// Done reports whether the cursor is at its end.
	Done() bool

	// Value returns the current element, or ErrEndOfSequence when Done.
	Value() (T, error)

	// Next advances the cursor by one produced element, or returns
	// ErrEndOfSequence when Done.
	Next() error

	// Clone returns an independent cursor at the same position.
	Clone() Cursor[T]
}

// Basic walks a [begin, end) position range and yields elements unchanged.
type Basic[T any, P Position[P, T]] struct {
	pos P
	end P
}

// NewBasic returns a cursor at begin that stops when it reaches end.
func NewBasic[T any, P Position[P, T]](begin, end P) *Basic[T, P] {
	return &Basic[T, P]{pos: begin, end: end}
}

func (c *Basic[T, P]) Done() bool {
	return c.pos.Equal(c.end)
}

func (c *Basic[T, P]) Value() (v T, err error) {
	if c.Done() {
		return v, ErrEndOfSequence
	}
	return c.pos.Get(), nil
}

func (c *Basic[T, P]) Next() error {
	if c.Done() {
		return ErrEndOfSequence
	}
	c.pos = c.pos.Succ()
	return nil
}

func (c *Basic[T, P]) Clone() Cursor[T] {
	cp := *c
	return &cp
}

// Position returns the current raw position.
func (c *Basic[T, P]) Position() P {
	return c.pos
}

// End returns the raw end position.
func (c *Basic[T, P]) End() P {
	return c.end
}
