package unrolled

import "unsafe"

// ScanHook observes the memory range of every node an allocator hands
// out: AddRange on allocation, RemoveRange on deallocation, bracketing
// the node's whole lifetime. It exists for integrations that track
// element storage held outside the traced heap (leak checkers,
// external collectors). Both built-in allocators honor it; nil means
// no hook.
type ScanHook interface {
	AddRange(p unsafe.Pointer, size uintptr)
	RemoveRange(p unsafe.Pointer)
}

// Allocator supplies and reclaims fixed-layout nodes for a List. An
// AllocNode failure is fatal to the list operation that needed the
// node; the container performs no retry.
//
// Implementations:
//   - NewHeapAllocator: ordinary GC-managed nodes, any element type
//   - NewArena: one fixed memory-mapped region, pointer-free types only
//   - NewCheckedAllocator: counting/diagnostic wrapper around either
type Allocator[T any] interface {
	// AllocNode returns an unlinked node with an empty occupancy mask
	// and a slot array of the bound layout's capacity.
	AllocNode() (*Node[T], error)

	// FreeNode returns a node to the allocator. The node must have been
	// produced by the same allocator and must not be referenced again.
	FreeNode(n *Node[T])

	// Layout returns the node geometry this allocator was bound to.
	Layout() Layout

	// Close releases allocator-owned resources. Nodes obtained from the
	// allocator are invalid afterwards.
	Close() error
}

// heapAllocator is the default: nodes are ordinary heap objects, fully
// visible to the garbage collector, so any element type is allowed.
type heapAllocator[T any] struct {
	layout Layout
	hook   ScanHook
}

// NewHeapAllocator returns the default heap-backed node allocator.
// hook may be nil.
func NewHeapAllocator[T any](layout Layout, hook ScanHook) Allocator[T] {
	return &heapAllocator[T]{layout: layout, hook: hook}
}

func (a *heapAllocator[T]) AllocNode() (*Node[T], error) {
	n := &Node[T]{slots: make([]T, a.layout.Capacity)}
	if a.hook != nil {
		a.hook.AddRange(unsafe.Pointer(n), a.nodeFootprint())
	}
	return n, nil
}

func (a *heapAllocator[T]) FreeNode(n *Node[T]) {
	if a.hook != nil {
		a.hook.RemoveRange(unsafe.Pointer(n))
	}
	// Drop element references so the heap node retains nothing while
	// stale cursors may still point at it.
	n.next, n.prev, n.used, n.slots = nil, nil, 0, nil
}

func (a *heapAllocator[T]) Layout() Layout { return a.layout }

func (a *heapAllocator[T]) Close() error { return nil }

func (a *heapAllocator[T]) nodeFootprint() uintptr {
	return unsafe.Sizeof(Node[T]{}) + a.layout.elemSize*uintptr(a.layout.Capacity)
}

// CheckedAllocator wraps another allocator with alloc/free accounting.
// It panics on a free of a node it never handed out (double free or
// foreign node). Tests and debug builds use it to audit node
// lifetimes.
type CheckedAllocator[T any] struct {
	inner Allocator[T]
	live  map[*Node[T]]struct{}
	stats AllocStats
}

// AllocStats is a snapshot of a CheckedAllocator's counters.
type AllocStats struct {
	Allocs int // nodes handed out since construction
	Frees  int // nodes returned since construction
	Live   int // nodes currently outstanding
}

// NewCheckedAllocator wraps inner with lifetime accounting.
func NewCheckedAllocator[T any](inner Allocator[T]) *CheckedAllocator[T] {
	return &CheckedAllocator[T]{inner: inner, live: make(map[*Node[T]]struct{})}
}

func (c *CheckedAllocator[T]) AllocNode() (*Node[T], error) {
	n, err := c.inner.AllocNode()
	if err != nil {
		return nil, err
	}
	c.stats.Allocs++
	c.live[n] = struct{}{}
	return n, nil
}

func (c *CheckedAllocator[T]) FreeNode(n *Node[T]) {
	if _, ok := c.live[n]; !ok {
		panic("unrolled: free of node not owned by allocator")
	}
	delete(c.live, n)
	c.stats.Frees++
	c.inner.FreeNode(n)
}

func (c *CheckedAllocator[T]) Layout() Layout { return c.inner.Layout() }

func (c *CheckedAllocator[T]) Close() error { return c.inner.Close() }

// Stats returns the current counters.
func (c *CheckedAllocator[T]) Stats() AllocStats {
	s := c.stats
	s.Live = len(c.live)
	return s
}

// Compile-time interface checks.
var (
	_ Allocator[int] = (*heapAllocator[int])(nil)
	_ Allocator[int] = (*CheckedAllocator[int])(nil)
)
