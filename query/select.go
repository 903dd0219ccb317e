package query

// Select projects every element of q through load.
//
// A Select directly after a Where is fused with it: the filter still runs on
// the unprojected element and load only runs on the survivors. A Where after
// a Select filters on the projected value.
func Select[T, R any](q Query[T], load func(T) R) Query[R] {
	switch s := q.get().(type) {
	case *whereStage[T]:
		return Query[R]{s: newSelectWhere(s.begin.Upstream(), s.keep, load)}
	default:
		return Query[R]{s: newSelect(s.open(), load)}
	}
}
