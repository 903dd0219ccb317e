package cursor

import "iter"

// Advance moves c forward by up to n elements, stopping early at the end.
// It returns the number of steps taken.
func Advance[T any](c Cursor[T], n int) int {
	steps := 0
	for steps < n && c.Next() == nil {
		steps++
	}
	return steps
}

// SkipWhile moves c forward while pred holds for the current element.
// It returns the number of steps taken.
func SkipWhile[T any](c Cursor[T], pred func(T) bool) int {
	steps := 0
	for {
		v, err := c.Value()
		if err != nil || !pred(v) {
			return steps
		}
		_ = c.Next()
		steps++
	}
}

// Values drains c as an iter.Seq. The cursor is consumed; pass a clone to keep it.
func Values[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := c.Value()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
			if c.Next() != nil {
				return
			}
		}
	}
}
