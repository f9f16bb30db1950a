package unrolled

import "errors"

var (
	// ErrArenaExhausted indicates the arena has no free node blocks left.
	ErrArenaExhausted = errors.New("unrolled: arena exhausted")

	// ErrElemHasPointers indicates an element type containing pointers
	// was used with an allocator whose memory the garbage collector does
	// not scan.
	ErrElemHasPointers = errors.New("unrolled: element type contains pointers")

	// ErrClosed indicates use of an allocator after Close.
	ErrClosed = errors.New("unrolled: allocator closed")
)
