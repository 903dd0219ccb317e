package cursor

// Filter yields only the elements of an upstream cursor accepted by keep.
//
// A position is invalid when keep rejects it. Construction and every Next
// advance the upstream past invalid positions, so a Filter always rests on an
// accepted element or at the end.
type Filter[T any] struct {
	up   Cursor[T]
	keep func(T) bool
}

// NewFilter takes ownership of up and positions it on the first accepted element.
func NewFilter[T any](up Cursor[T], keep func(T) bool) *Filter[T] {
	f := &Filter[T]{up: up, keep: keep}
	f.skip()
	return f
}

func (f *Filter[T]) invalid() bool {
	v, err := f.up.Value()
	return err == nil && !f.keep(v)
}

func (f *Filter[T]) skip() {
	for f.invalid() {
		_ = f.up.Next()
	}
}

func (f *Filter[T]) Done() bool {
	return f.up.Done()
}

func (f *Filter[T]) Value() (T, error) {
	return f.up.Value()
}

func (f *Filter[T]) Next() error {
	if err := f.up.Next(); err != nil {
		return err
	}
	f.skip()
	return nil
}

func (f *Filter[T]) Clone() Cursor[T] {
	return &Filter[T]{up: f.up.Clone(), keep: f.keep}
}

// Upstream returns a clone of the wrapped cursor at the current position.
func (f *Filter[T]) Upstream() Cursor[T] {
	return f.up.Clone()
}

// Full fuses Filter and Load: keep is evaluated against the raw upstream
// element and load is applied only on Value.
type Full[S, T any] struct {
	up   Cursor[S]
	keep func(S) bool
	load func(S) T
}

// NewFull takes ownership of up and positions it on the first element accepted by keep.
func NewFull[S, T any](up Cursor[S], keep func(S) bool, load func(S) T) *Full[S, T] {
	f := &Full[S, T]{up: up, keep: keep, load: load}
	f.skip()
	return f
}

func (f *Full[S, T]) invalid() bool {
	v, err := f.up.Value()
	return err == nil && !f.keep(v)
}

func (f *Full[S, T]) skip() {
	for f.invalid() {
		_ = f.up.Next()
	}
}

func (f *Full[S, T]) Done() bool {
	return f.up.Done()
}

func (f *Full[S, T]) Value() (v T, err error) {
	raw, err := f.up.Value()
	if err != nil {
		return v, err
	}
	return f.load(raw), nil
}

func (f *Full[S, T]) Next() error {
	if err := f.up.Next(); err != nil {
		return err
	}
	f.skip()
	return nil
}

func (f *Full[S, T]) Clone() Cursor[T] {
	return &Full[S, T]{up: f.up.Clone(), keep: f.keep, load: f.load}
}

// Upstream returns a clone of the wrapped cursor at the current position.
func (f *Full[S, T]) Upstream() Cursor[S] {
	return f.up.Clone()
}
