/*
Package cursor provides the traversal layer of lazyq: value-typed positions over
underlying storage and the cursor policies that decide how a pipeline stage
advances, terminates and dereferences.

A [Position] is a plain value (an offset into a slice, a node of a linked list,
a counter). A begin/end pair of positions describes a range; the end position is
never dereferenced.

A [Cursor] is the mutable handle a consumer drives:

	for c := q.Cursor(); !c.Done(); c.Next() {
		v, _ := c.Value()
		...
	}

Policies:

  - [Basic]: walks a position range unchanged.
  - [Filter]: skips elements rejected by a predicate; construction pre-skips.
  - [Load]: projects every element, never skips.
  - [Full]: Filter and Load fused; the predicate sees the raw element.
  - [Reach]: bounds another cursor by a remaining count.
  - [Until]: ends another cursor at the first element failing a predicate.

Cursors are cheap to [Cursor.Clone]. A stage keeps one positioned begin cursor and
hands out clones, so no two traversals share state.
*/
package cursor
