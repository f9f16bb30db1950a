package unrolled

import (
	"unsafe"

	"github.com/bioinfornatics/containers/internal/cacheline"
)

const (
	// maskBits caps node capacity: occupancy is a single uint64.
	maskBits  = 64
	maskBytes = 8
	ptrBytes  = unsafe.Sizeof(uintptr(0))
)

// Layout fixes the node geometry for one element type under one
// cache-line budget. It is bound when a List or Allocator is
// constructed and never changes afterwards; a different budget means a
// different List, not a runtime option.
type Layout struct {
	// LineSize is the cache-line budget in bytes.
	LineSize int

	// Capacity is the number of slots per node.
	Capacity int

	elemSize  uintptr
	elemAlign uintptr
}

// LayoutFor derives the node geometry for element type T. A
// non-positive lineSize selects the detected cache-line size.
func LayoutFor[T any](lineSize int) Layout {
	if lineSize <= 0 {
		lineSize = cacheline.Size()
	}
	var zero T
	return Layout{
		LineSize:  lineSize,
		Capacity:  capacityFor(unsafe.Sizeof(zero), lineSize),
		elemSize:  unsafe.Sizeof(zero),
		elemAlign: unsafe.Alignof(zero),
	}
}

// capacityFor is the pure capacity model: the largest slot count whose
// payload fits the line budget next to the occupancy mask and the two
// chain links, clamped to [1, maskBits].
func capacityFor(elemSize uintptr, lineSize int) int {
	if elemSize == 0 {
		return maskBits
	}
	avail := lineSize - int(maskBytes+2*ptrBytes)
	n := avail / int(elemSize)
	if n < 1 {
		return 1
	}
	if n > maskBits {
		return maskBits
	}
	return n
}

// NodeCapacity reports how many elements of type T fit in one node for
// the given cache-line budget. A non-positive lineSize selects the
// detected size.
func NodeCapacity[T any](lineSize int) int {
	return LayoutFor[T](lineSize).Capacity
}
