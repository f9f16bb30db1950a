package unrolled

import "fmt"

// StructureError describes the first structural invariant Verify found
// broken.
type StructureError struct {
	Invariant string
	Detail    string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("unrolled: invariant %q violated: %s", e.Invariant, e.Detail)
}

// Verify walks the whole structure and checks every invariant the
// mutation paths rely on: front/back/length coupling, prev/next
// symmetry, occupancy mask width, the no-empty-node rule, the length
// sum, and the adjacent-pair merge invariant. It returns nil when the
// structure is sound. Tests call it directly; builds with the
// containersdebug tag additionally run it after every mutation.
func (l *List[T]) Verify() error {
	if (l.front == nil) != (l.back == nil) {
		return &StructureError{"endpoint coupling",
			fmt.Sprintf("front=%p back=%p", l.front, l.back)}
	}
	if l.front == nil && l.length != 0 {
		return &StructureError{"length",
			fmt.Sprintf("empty chain with length %d", l.length)}
	}
	sum := 0
	var prev *Node[T]
	for n := l.front; n != nil; n = n.next {
		if n.prev != prev {
			return &StructureError{"link symmetry",
				fmt.Sprintf("node %p has prev %p, want %p", n, n.prev, prev)}
		}
		if n.capacity() != l.layout.Capacity {
			return &StructureError{"capacity",
				fmt.Sprintf("node %p has %d slots, layout says %d", n, n.capacity(), l.layout.Capacity)}
		}
		if n.used&^lowMask(l.layout.Capacity) != 0 {
			return &StructureError{"occupancy width",
				fmt.Sprintf("node %p mask %#x has bits beyond capacity %d", n, n.used, l.layout.Capacity)}
		}
		if n.empty() {
			return &StructureError{"empty node",
				fmt.Sprintf("node %p reachable with population 0", n)}
		}
		if prev != nil && prev.population()+n.population() <= l.layout.Capacity {
			return &StructureError{"merge",
				fmt.Sprintf("adjacent populations %d+%d fit capacity %d",
					prev.population(), n.population(), l.layout.Capacity)}
		}
		sum += n.population()
		prev = n
	}
	if prev != l.back {
		return &StructureError{"tail reachability",
			fmt.Sprintf("walk from front ends at %p, back is %p", prev, l.back)}
	}
	if sum != l.length {
		return &StructureError{"length",
			fmt.Sprintf("population sum %d, length %d", sum, l.length)}
	}
	return nil
}
