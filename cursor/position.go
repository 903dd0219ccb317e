package cursor

// Index addresses an element of a slice by offset, moving forward.
type Index[T any] struct {
	items []T
	i     int
}

// Span returns the begin and end positions covering items.
func Span[T any](items []T) (begin, end Index[T]) {
	return Index[T]{items: items}, Index[T]{items: items, i: len(items)}
}

// Over returns a Basic cursor over every element of items.
func Over[T any](items []T) *Basic[T, Index[T]] {
	begin, end := Span(items)
	return NewBasic[T](begin, end)
}

func (x Index[T]) Get() T { return x.items[x.i] }
func (x Index[T]) Succ() Index[T] { return Index[T]{items: x.items, i: x.i + 1} }
func (x Index[T]) Equal(o Index[T]) bool { return x.i == o.i }

// Offset returns the slice offset of the position.
func (x Index[T]) Offset() int { return x.i }

// Backward addresses an element of a slice by offset, moving from the last
// element towards the first.
type Backward[T any] struct {
	items []T
	i     int
}

// ReverseSpan returns the begin and end positions walking items back to front.
func ReverseSpan[T any](items []T) (begin, end Backward[T]) {
	return Backward[T]{items: items, i: len(items) - 1}, Backward[T]{items: items, i: -1}
}

func (x Backward[T]) Get() T { return x.items[x.i] }
func (x Backward[T]) Succ() Backward[T] { return Backward[T]{items: x.items, i: x.i - 1} }
func (x Backward[T]) Equal(o Backward[T]) bool { return x.i == o.i }

// Counter is a position whose value is the integer itself.
type Counter int

func (n Counter) Get() int { return int(n) }
func (n Counter) Succ() Counter { return n + 1 }
func (n Counter) Equal(o Counter) bool { return n == o }

// Constant repeats one value; only the step count distinguishes positions.
type Constant[T any] struct {
	v T
	n int
}

// Repeat returns the begin and end positions yielding v count times.
func Repeat[T any](v T, count int) (begin, end Constant[T]) {
	return Constant[T]{v: v}, Constant[T]{v: v, n: max(count, 0)}
}

func (c Constant[T]) Get() T { return c.v }
func (c Constant[T]) Succ() Constant[T] { return Constant[T]{v: c.v, n: c.n + 1} }
func (c Constant[T]) Equal(o Constant[T]) bool { return c.n == o.n }
