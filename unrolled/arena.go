package unrolled

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/bioinfornatics/containers/internal/mmarena"
)

// Arena is a node allocator backed by one fixed anonymous memory
// region outside the traced heap. Each block co-locates the node
// header and the slot payload, aligned to the layout's line size, so a
// node's mask, links, and elements genuinely share cache lines.
//
// Because the garbage collector does not scan the region, NewArena
// rejects element types that contain pointers. Freed blocks are
// recycled through a freelist threaded through the blocks themselves.
type Arena[T any] struct {
	layout    Layout
	hook      ScanHook
	region    []byte
	release   func() error
	base      unsafe.Pointer // first line-aligned block
	blockSize uintptr
	free      unsafe.Pointer // freelist head, stored in each free block's first word
	closed    bool
}

// NewArena reserves room for maxNodes nodes of the given layout. The
// layout's line size must be a power of two. hook may be nil.
func NewArena[T any](layout Layout, maxNodes int, hook ScanHook) (*Arena[T], error) {
	if maxNodes <= 0 {
		return nil, fmt.Errorf("unrolled: arena needs at least one node, got %d", maxNodes)
	}
	if layout.Capacity <= 0 {
		return nil, fmt.Errorf("unrolled: layout with capacity %d", layout.Capacity)
	}
	if layout.LineSize <= 0 || layout.LineSize&(layout.LineSize-1) != 0 {
		return nil, fmt.Errorf("unrolled: line size %d is not a power of two", layout.LineSize)
	}
	var zero T
	if typeHasPointers(reflect.TypeOf(&zero).Elem()) {
		return nil, ErrElemHasPointers
	}

	block := alignUp(unsafe.Sizeof(Node[T]{})+layout.elemSize*uintptr(layout.Capacity),
		uintptr(layout.LineSize))
	// One extra line so the first block can be aligned within the
	// region regardless of where the mapping starts.
	region, release, err := mmarena.Reserve(int(block)*maxNodes + layout.LineSize)
	if err != nil {
		return nil, err
	}

	a := &Arena[T]{
		layout:    layout,
		hook:      hook,
		region:    region,
		release:   release,
		blockSize: block,
	}
	start := unsafe.Pointer(&region[0])
	skew := alignUp(uintptr(start), uintptr(layout.LineSize)) - uintptr(start)
	a.base = unsafe.Add(start, skew)
	for i := maxNodes - 1; i >= 0; i-- {
		p := unsafe.Add(a.base, uintptr(i)*block)
		*(*unsafe.Pointer)(p) = a.free
		a.free = p
	}
	return a, nil
}

func (a *Arena[T]) AllocNode() (*Node[T], error) {
	if a.closed {
		return nil, ErrClosed
	}
	p := a.free
	if p == nil {
		return nil, ErrArenaExhausted
	}
	a.free = *(*unsafe.Pointer)(p)

	n := (*Node[T])(p)
	n.next, n.prev, n.used = nil, nil, 0
	n.slots = unsafe.Slice((*T)(unsafe.Add(p, unsafe.Sizeof(Node[T]{}))), a.layout.Capacity)
	// Recycled blocks carry payload from their previous life.
	var zero T
	for i := range n.slots {
		n.slots[i] = zero
	}
	if a.hook != nil {
		a.hook.AddRange(p, a.blockSize)
	}
	return n, nil
}

func (a *Arena[T]) FreeNode(n *Node[T]) {
	p := unsafe.Pointer(n)
	if a.hook != nil {
		a.hook.RemoveRange(p)
	}
	n.slots = nil
	// The freelist link reuses the block's first word.
	*(*unsafe.Pointer)(p) = a.free
	a.free = p
}

func (a *Arena[T]) Layout() Layout { return a.layout }

// BlockSize returns the line-aligned byte size of one node block.
func (a *Arena[T]) BlockSize() uintptr { return a.blockSize }

// Close unmaps the region. Every node obtained from the arena becomes
// invalid. Closing twice is a no-op.
func (a *Arena[T]) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.free = nil
	a.base = nil
	a.region = nil
	return a.release()
}

var _ Allocator[int] = (*Arena[int])(nil)

func alignUp(v, align uintptr) uintptr {
	return (v + align - 1) &^ (align - 1)
}

// typeHasPointers reports whether values of t may embed references the
// garbage collector would need to trace.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, chans, funcs, strings, interfaces.
		return true
	}
}
