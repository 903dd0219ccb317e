package cursor

// Reach bounds an upstream cursor to at most a number of elements.
//
// The effective end is whichever comes first: the upstream end or the
// remaining count dropping to zero. Each Next spends one unit before
// delegating to the upstream. The remaining count is not part of the position:
// two Reach cursors over the same upstream position differ only in how far
// they may still go.
type Reach[T any] struct {
	up        Cursor[T]
	remaining int
}

// NewReach takes ownership of up. A negative n is treated as zero.
func NewReach[T any](up Cursor[T], n int) *Reach[T] {
	return &Reach[T]{up: up, remaining: max(n, 0)}
}

func (r *Reach[T]) Done() bool {
	return r.remaining <= 0 || r.up.Done()
}

func (r *Reach[T]) Value() (v T, err error) {
	if r.remaining <= 0 {
		return v, ErrEndOfSequence
	}
	return r.up.Value()
}

func (r *Reach[T]) Next() error {
	if r.Done() {
		return ErrEndOfSequence
	}
	r.remaining--
	if r.remaining == 0 {
		// the bound is the end; do not drag the upstream past it
		return nil
	}
	return r.up.Next()
}

func (r *Reach[T]) Clone() Cursor[T] {
	return &Reach[T]{up: r.up.Clone(), remaining: r.remaining}
}

// Remaining returns how many more elements the cursor may yield.
func (r *Reach[T]) Remaining() int {
	return r.remaining
}

// Until ends an upstream cursor at the first element rejected by keep.
type Until[T any] struct {
	up   Cursor[T]
	keep func(T) bool
}

// NewUntil takes ownership of up.
func NewUntil[T any](up Cursor[T], keep func(T) bool) *Until[T] {
	return &Until[T]{up: up, keep: keep}
}

func (u *Until[T]) Done() bool {
	v, err := u.up.Value()
	return err != nil || !u.keep(v)
}

func (u *Until[T]) Value() (v T, err error) {
	v, err = u.up.Value()
	if err != nil {
		return v, err
	}
	if !u.keep(v) {
		var zero T
		return zero, ErrEndOfSequence
	}
	return v, nil
}

func (u *Until[T]) Next() error {
	if u.Done() {
		return ErrEndOfSequence
	}
	return u.up.Next()
}

func (u *Until[T]) Clone() Cursor[T] {
	return &Until[T]{up: u.up.Clone(), keep: u.keep}
}
