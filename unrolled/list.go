package unrolled

// noCopy triggers go vet's copylocks check when a List is copied by
// value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// List is a cache-line chunked sequence of T. The zero value is not
// usable; construct with New, NewWithLineSize, or NewWithAllocator. A
// List owns its node chain exclusively, must not be copied after first
// use, and is not safe for concurrent use.
type List[T comparable] struct {
	noCopy noCopy

	front  *Node[T]
	back   *Node[T]
	length int
	layout Layout
	alloc  Allocator[T]
}

// New returns an empty list using the detected cache-line size and the
// default heap allocator.
func New[T comparable]() *List[T] {
	return NewWithLineSize[T](0)
}

// NewWithLineSize returns an empty list whose node capacity is derived
// from the given cache-line budget. A non-positive lineSize selects
// the detected size.
func NewWithLineSize[T comparable](lineSize int) *List[T] {
	return NewWithAllocator[T](NewHeapAllocator[T](LayoutFor[T](lineSize), nil))
}

// NewWithAllocator returns an empty list drawing nodes from a. The
// list adopts the allocator's bound layout and releases the allocator
// on Close.
func NewWithAllocator[T comparable](a Allocator[T]) *List[T] {
	return &List[T]{layout: a.Layout(), alloc: a}
}

// Len returns the number of live elements.
func (l *List[T]) Len() int { return l.length }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.length == 0 }

// Capacity returns the number of slots per node.
func (l *List[T]) Capacity() int { return l.layout.Capacity }

// Layout returns the node geometry the list was constructed with.
func (l *List[T]) Layout() Layout { return l.layout }

// newNode draws a node from the allocator. Exhaustion is fatal at this
// layer: there is no way to half-insert an element.
func (l *List[T]) newNode() *Node[T] {
	n, err := l.alloc.AllocNode()
	if err != nil {
		panic("unrolled: node allocation failed: " + err.Error())
	}
	return n
}

// pushTail links a fresh node holding v after the current back (or as
// the only node when the chain is empty).
func (l *List[T]) pushTail(v T) {
	n := l.newNode()
	n.slots[0] = v
	n.markUsed(0)
	if l.back == nil {
		l.front, l.back = n, n
		return
	}
	n.prev = l.back
	l.back.next = n
	l.back = n
}

// PushBack appends v, preserving insertion order. Amortized O(1): only
// the tail node is examined, never earlier ones.
func (l *List[T]) PushBack(v T) {
	if l.back == nil {
		l.pushTail(v)
	} else if i := l.back.nextFree(); i < l.layout.Capacity {
		l.back.slots[i] = v
		l.back.markUsed(i)
	} else {
		l.pushTail(v)
	}
	l.length++
	l.debugCheck()
}

// Append pushes each value in order, as repeated PushBack calls.
func (l *List[T]) Append(vs ...T) {
	for _, v := range vs {
		l.PushBack(v)
	}
}

// InsertAnywhere stores v in the first free slot found scanning from
// the front, allocating a new tail node only when every node is full.
// O(number of nodes) worst case. This is the one entry point that does
// not preserve insertion order relative to prior removals; use it only
// when order is irrelevant.
func (l *List[T]) InsertAnywhere(v T) {
	for n := l.front; n != nil; n = n.next {
		if i := n.nextFree(); i < l.layout.Capacity {
			n.slots[i] = v
			n.markUsed(i)
			l.length++
			l.debugCheck()
			return
		}
	}
	l.pushTail(v)
	l.length++
	l.debugCheck()
}

// Remove deletes the first element equal to v, scanning nodes from the
// front and slots in order. It reports whether an element was removed;
// an absent value is a normal false result, not an error. A node
// emptied by the removal is unlinked and freed immediately; otherwise
// the shrunken node is merged with its successor if the pair fits one
// node, else with its predecessor.
func (l *List[T]) Remove(v T) bool {
	for n := l.front; n != nil; n = n.next {
		for i := 0; i < l.layout.Capacity; i++ {
			if n.isFree(i) || n.slots[i] != v {
				continue
			}
			n.markUnused(i)
			l.length--
			switch {
			case n.empty():
				l.unlink(n)
			case l.tryMerge(n, n.next):
			default:
				l.tryMerge(n.prev, n)
			}
			l.debugCheck()
			return true
		}
	}
	return false
}

// Front returns the first element in O(1): the lowest occupied slot of
// the head node. A live list never leaves an emptied node at the head,
// so that slot always exists. Panics on an empty list.
func (l *List[T]) Front() T {
	if l.front == nil {
		panic("unrolled: Front on empty list")
	}
	return l.front.slots[l.front.lowestUsed()]
}

// Back returns the last element. Unlike Front this is O(capacity): the
// tail node can carry trailing gaps from interior removals, so the
// highest occupied slot has to be searched for from the top down. The
// asymmetry with Front is inherent to the layout, not an oversight.
func (l *List[T]) Back() T {
	if l.back == nil {
		panic("unrolled: Back on empty list")
	}
	return l.back.slots[l.back.highestUsed()]
}

// PopFront removes the first element. Panics on an empty list.
func (l *List[T]) PopFront() {
	l.TakeFront()
}

// TakeFront removes and returns the first element, using the same
// lowest-occupied-slot lookup as Front. Panics on an empty list.
func (l *List[T]) TakeFront() T {
	if l.front == nil {
		panic("unrolled: TakeFront on empty list")
	}
	n := l.front
	i := n.lowestUsed()
	v := n.slots[i]
	n.markUnused(i)
	l.length--
	if n.empty() {
		l.unlink(n)
	} else {
		l.tryMerge(n, n.next)
	}
	l.debugCheck()
	return v
}

// PopBack removes the last element. Panics on an empty list.
func (l *List[T]) PopBack() {
	l.TakeBack()
}

// TakeBack removes and returns the last element, locating it with the
// same top-down slot scan as Back. Panics on an empty list.
func (l *List[T]) TakeBack() T {
	if l.back == nil {
		panic("unrolled: TakeBack on empty list")
	}
	n := l.back
	i := n.highestUsed()
	v := n.slots[i]
	n.markUnused(i)
	l.length--
	if n.empty() {
		l.unlink(n)
	} else {
		l.tryMerge(n.prev, n)
	}
	l.debugCheck()
	return v
}

// Clear removes every element and returns every node to the allocator.
func (l *List[T]) Clear() {
	for n := l.front; n != nil; {
		next := n.next
		l.alloc.FreeNode(n)
		n = next
	}
	l.front, l.back, l.length = nil, nil, 0
	l.debugCheck()
}

// Close clears the list and releases its allocator. The list must not
// be used afterwards.
func (l *List[T]) Close() error {
	l.Clear()
	return l.alloc.Close()
}

// unlink splices n out of the chain and returns it to the allocator.
// prev is only ever followed for splicing; ownership runs head to
// tail.
func (l *List[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}
	l.alloc.FreeNode(n)
}

// shouldMerge reports whether a and b can be collapsed into one node.
func (l *List[T]) shouldMerge(a, b *Node[T]) bool {
	return a != nil && b != nil && a.population()+b.population() <= l.layout.Capacity
}

// tryMerge merges b into a when the pair fits one node.
func (l *List[T]) tryMerge(a, b *Node[T]) bool {
	if !l.shouldMerge(a, b) {
		return false
	}
	l.merge(a, b)
	return true
}

// merge left-compacts a's occupied values followed by b's, in slot
// order, into a starting at slot 0, rebuilds a's mask as the low bits,
// and splices b out. Compaction changes slot positions but preserves
// chain-order iteration, because slot order within each node matches
// logical order.
func (l *List[T]) merge(a, b *Node[T]) {
	w := 0
	for i := 0; i < l.layout.Capacity; i++ {
		if !a.isFree(i) {
			a.slots[w] = a.slots[i]
			w++
		}
	}
	for i := 0; i < l.layout.Capacity; i++ {
		if !b.isFree(i) {
			a.slots[w] = b.slots[i]
			w++
		}
	}
	a.used = lowMask(w)
	var zero T
	for i := w; i < l.layout.Capacity; i++ {
		a.slots[i] = zero
	}
	l.unlink(b)
}
