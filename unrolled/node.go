package unrolled

import "math/bits"

// Node is one chunk of the chain: a fixed slot array, a one-bit-per-slot
// occupancy mask, and the prev/next links. Nodes know nothing about the
// List that owns them; all invariants are maintained by the caller.
type Node[T any] struct {
	next  *Node[T]
	prev  *Node[T]
	used  uint64
	slots []T
}

func (n *Node[T]) capacity() int { return len(n.slots) }

// nextFree returns the lowest-index free slot, or capacity when the
// node is full. Bits above capacity are never set, so the complement
// scan lands on capacity exactly when every slot is occupied.
func (n *Node[T]) nextFree() int {
	return bits.TrailingZeros64(^n.used)
}

func (n *Node[T]) markUsed(i int) { n.used |= 1 << uint(i) }

// markUnused clears the occupancy bit and zeroes the slot so a removed
// element is not retained by the node's storage.
func (n *Node[T]) markUnused(i int) {
	n.used &^= 1 << uint(i)
	var zero T
	n.slots[i] = zero
}

func (n *Node[T]) isFree(i int) bool { return n.used&(1<<uint(i)) == 0 }
func (n *Node[T]) population() int   { return bits.OnesCount64(n.used) }
func (n *Node[T]) empty() bool       { return n.used == 0 }
func (n *Node[T]) full() bool        { return n.population() == n.capacity() }

// lowestUsed returns the lowest occupied slot. The caller guarantees
// the node is not empty.
func (n *Node[T]) lowestUsed() int { return bits.TrailingZeros64(n.used) }

// highestUsed returns the highest occupied slot by scanning the mask
// from the top slot downward, or -1 when empty. The tail of a list can
// carry trailing gaps left by interior removals, so unlike the
// lowest-bit path this costs O(capacity); Back inherits that cost
// deliberately.
func (n *Node[T]) highestUsed() int {
	for i := n.capacity() - 1; i >= 0; i-- {
		if !n.isFree(i) {
			return i
		}
	}
	return -1
}

// lowMask returns a mask with the low n bits set.
func lowMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}
