package cursor

// Load projects every element of an upstream cursor through load.
// It advances exactly one upstream step per Next.
type Load[S, T any] struct {
	up   Cursor[S]
	load func(S) T
}

// NewLoad takes ownership of up.
func NewLoad[S, T any](up Cursor[S], load func(S) T) *Load[S, T] {
	return &Load[S, T]{up: up, load: load}
}

func (l *Load[S, T]) Done() bool {
	return l.up.Done()
}

func (l *Load[S, T]) Value() (v T, err error) {
	raw, err := l.up.Value()
	if err != nil {
		return v, err
	}
	return l.load(raw), nil
}

func (l *Load[S, T]) Next() error {
	return l.up.Next()
}

func (l *Load[S, T]) Clone() Cursor[T] {
	return &Load[S, T]{up: l.up.Clone(), load: l.load}
}

// Upstream returns a clone of the wrapped cursor at the current position.
func (l *Load[S, T]) Upstream() Cursor[S] {
	return l.up.Clone()
}
