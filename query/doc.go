/*
Package query composes lazy, declarative pipelines over in-memory sequences.

A [Query] wraps an immutable pipeline stage. Chaining never mutates the
receiver; every call returns a new Query:

	q := query.Select(
		query.From(xs).Where(func(x int) bool { return x > 1 }),
		func(x int) int { return x * 2 },
	)
	sorted := query.Sorted(q) // [4 6 10 10] for xs = [5 3 5 1 2]

# Deferred and eager operators

[Query.Where], [Select], [Query.Take] and [Query.TakeWhile] are deferred:
their cost is paid per element while the result is traversed. Consecutive
Where and Select calls are fused into a single filter-and-project stage, so a
chain never re-traverses its source.

[Query.Skip] and [Query.SkipWhile] pay their cost once, at call time, and root
a new stage at the resulting position. [Query.OrderBy] and [GroupBy] fully
traverse their input at call time and own the materialized result; every copy
of the returned value shares that storage.

# Borrowing

Deferred stages borrow the source they were built over. The slice or container
passed to [From] or [FromRange] must outlive every query built on it, and must
not be mutated while a query over it is traversed.

# Errors

Terminal operators that need at least one element ([Min], [Max],
[Query.First], ...) return [ErrEmptySequence] on an empty query. Lookup of an
absent key on a [Grouping] returns [ErrKeyNotFound]. Cursors report
[cursor.ErrEndOfSequence] when used past their end.

# Concurrency

Queries are immutable and every traversal works on its own cursor, so a query
may be traversed from several goroutines as long as the borrowed source is not
mutated concurrently.
*/
package query
