package unrolled

// Cursor is a forward read cursor over a List. It yields element
// values in chain order, skipping free slots, and never hands out
// references into node storage. Copying a Cursor yields an independent
// cursor at the same position, so several traversals can run over one
// list without shared state. Mutating the list while a cursor derived
// from it is live is undefined: the cursor may observe stale or freed
// nodes.
type Cursor[T comparable] struct {
	node *Node[T]
	idx  int
}

// Iter returns a cursor positioned on the first element, or an
// exhausted cursor for an empty list.
func (l *List[T]) Iter() Cursor[T] {
	c := Cursor[T]{node: l.front}
	c.settle()
	return c
}

// Empty reports whether the cursor is exhausted.
func (c *Cursor[T]) Empty() bool { return c.node == nil }

// Value returns the element under the cursor. Panics when exhausted.
func (c *Cursor[T]) Value() T {
	if c.node == nil {
		panic("unrolled: Value on exhausted cursor")
	}
	return c.node.slots[c.idx]
}

// Next advances to the next occupied slot, crossing node boundaries as
// needed. Advancing an exhausted cursor is a no-op.
func (c *Cursor[T]) Next() {
	if c.node == nil {
		return
	}
	c.idx++
	c.settle()
}

// settle moves the cursor forward to the nearest occupied slot at or
// after the current position, or exhausts it.
func (c *Cursor[T]) settle() {
	for c.node != nil {
		if c.idx >= c.node.capacity() {
			c.node = c.node.next
			c.idx = 0
			continue
		}
		if c.node.isFree(c.idx) {
			c.idx++
			continue
		}
		return
	}
}
