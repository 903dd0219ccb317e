package query

import "lazyq/cursor"

// stage is an immutable pipeline descriptor. open hands out a fresh cursor
// positioned at the stage's begin; the stage's own cursors are never advanced.
type stage[T any] interface {
	open() cursor.Cursor[T]
	where(keep func(T) bool) stage[T]
	take(n int) stage[T]
}

// rootStage walks a range unchanged.
type rootStage[T any] struct {
	begin cursor.Cursor[T]
}

func (s *rootStage[T]) open() cursor.Cursor[T] { return s.begin.Clone() }

func (s *rootStage[T]) where(keep func(T) bool) stage[T] {
	return newWhere(s.begin.Clone(), keep)
}

func (s *rootStage[T]) take(n int) stage[T] { return &takeStage[T]{inner: s, n: max(n, 0)} }

// whereStage filters its upstream. begin already rests on the first kept element.
type whereStage[T any] struct {
	begin *cursor.Filter[T]
	keep  func(T) bool
}

func newWhere[T any](up cursor.Cursor[T], keep func(T) bool) *whereStage[T] {
	return &whereStage[T]{begin: cursor.NewFilter(up, keep), keep: keep}
}

func (s *whereStage[T]) open() cursor.Cursor[T] { return s.begin.Clone() }

func (s *whereStage[T]) where(next func(T) bool) stage[T] {
	prev := s.keep
	return newWhere(s.begin.Upstream(), func(v T) bool {
		return prev(v) && next(v)
	})
}

func (s *whereStage[T]) take(n int) stage[T] { return &takeStage[T]{inner: s, n: max(n, 0)} }

// selectStage projects every upstream element.
type selectStage[S, T any] struct {
	begin *cursor.Load[S, T]
	load  func(S) T
}

func newSelect[S, T any](up cursor.Cursor[S], load func(S) T) *selectStage[S, T] {
	return &selectStage[S, T]{begin: cursor.NewLoad(up, load), load: load}
}

func (s *selectStage[S, T]) open() cursor.Cursor[T] { return s.begin.Clone() }

// where keeps the projection and filters on the projected value.
func (s *selectStage[S, T]) where(next func(T) bool) stage[T] {
	load := s.load
	return newSelectWhere(s.begin.Upstream(), func(v S) bool {
		return next(load(v))
	}, load)
}

func (s *selectStage[S, T]) take(n int) stage[T] { return &takeStage[T]{inner: s, n: max(n, 0)} }

// selectWhereStage filters raw upstream elements and projects the survivors.
type selectWhereStage[S, T any] struct {
	begin *cursor.Full[S, T]
	keep  func(S) bool
	load  func(S) T
}

func newSelectWhere[S, T any](up cursor.Cursor[S], keep func(S) bool, load func(S) T) *selectWhereStage[S, T] {
	return &selectWhereStage[S, T]{
		begin: cursor.NewFull(up, keep, load),
		keep:  keep,
		load:  load,
	}
}

func (s *selectWhereStage[S, T]) open() cursor.Cursor[T] { return s.begin.Clone() }

func (s *selectWhereStage[S, T]) where(next func(T) bool) stage[T] {
	prev, load := s.keep, s.load
	return newSelectWhere(s.begin.Upstream(), func(v S) bool {
		return prev(v) && next(load(v))
	}, load)
}

func (s *selectWhereStage[S, T]) take(n int) stage[T] {
	return &takeStage[T]{inner: s, n: max(n, 0)}
}

// takeStage bounds its inner stage. Each opened cursor carries its own counter.
type takeStage[T any] struct {
	inner stage[T]
	n     int
}

func (s *takeStage[T]) open() cursor.Cursor[T] {
	return cursor.NewReach(s.inner.open(), s.n)
}

func (s *takeStage[T]) where(keep func(T) bool) stage[T] {
	return newWhere(s.open(), keep)
}

// take re-bounds the same inner stage; the tighter bound wins.
func (s *takeStage[T]) take(n int) stage[T] {
	return &takeStage[T]{inner: s.inner, n: min(s.n, max(n, 0))}
}

// untilStage ends its inner stage at the first element rejected by keep.
type untilStage[T any] struct {
	inner stage[T]
	keep  func(T) bool
}

func (s *untilStage[T]) open() cursor.Cursor[T] {
	return cursor.NewUntil(s.inner.open(), s.keep)
}

func (s *untilStage[T]) where(keep func(T) bool) stage[T] {
	return newWhere(s.open(), keep)
}

func (s *untilStage[T]) take(n int) stage[T] { return &takeStage[T]{inner: s, n: max(n, 0)} }
