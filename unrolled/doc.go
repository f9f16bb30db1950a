// Package unrolled provides a cache-line-sized unrolled doubly linked list.
//
// # Overview
//
// Elements are stored in fixed-capacity chunks ("nodes") linked into a
// doubly linked chain, rather than one element per node. Each node is
// sized so that its occupancy mask, chain links, and slot payload fit
// within one cache line, so traversal touches far fewer lines than a
// classic linked list while keeping O(1) insertion and removal next to
// the ends, and without the whole-array reallocation a contiguous
// vector pays on growth.
//
// # Node layout
//
// A node carries a uint64 occupancy mask (one bit per slot), prev/next
// links, and a slot array. Capacity is derived once per element type
// and line budget:
//
//	capacity = (lineSize - 8 mask bytes - 2 pointer sizes) / sizeof(T)
//
// clamped to [1, 64] (the mask is one machine word). A node whose
// population drops to zero is unlinked and freed immediately, and two
// chain-adjacent nodes whose populations together fit one node are
// merged eagerly, bounding wasted slots to under one node's worth.
//
// # Ordering
//
// PushBack and Append preserve insertion order. InsertAnywhere fills
// the first free slot found from the front and is the single entry
// point with no ordering guarantee; use it only when order is
// irrelevant. Front is O(1); Back is O(capacity) because the tail node
// may carry trailing gaps from interior removals.
//
// # Allocators
//
// Node memory comes from an Allocator. The default keeps nodes on the
// ordinary Go heap and accepts any element type. Arena serves nodes
// from one fixed memory-mapped region so that header and payload truly
// share a cache line; because that region is not scanned by the
// garbage collector, Arena rejects element types containing pointers.
// CheckedAllocator wraps either with alloc/free accounting for tests
// and diagnostics. An optional ScanHook observes every node's memory
// range for the node's whole lifetime.
//
// # Thread safety
//
// Lists are not safe for concurrent use and must not be copied after
// first use. Mutating a list while a Cursor derived from it is live is
// undefined. Callers needing shared access must synchronize
// externally.
package unrolled
