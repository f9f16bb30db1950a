package unrolled

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// referenceCapacity is an independent brute-force rendering of the
// capacity model: the largest n in [1, maskBits] whose node footprint
// fits the line budget, with 1 as the floor.
func referenceCapacity(elemSize uintptr, lineSize int) int {
	if elemSize == 0 {
		return maskBits
	}
	best := 1
	for n := 1; n <= maskBits; n++ {
		total := int(maskBytes+2*ptrBytes) + n*int(elemSize)
		if total <= lineSize {
			best = n
		}
	}
	return best
}

func TestCapacityFor_MatchesReference(t *testing.T) {
	for _, elemSize := range []uintptr{0, 1, 2, 4, 8, 16, 24, 48, 128} {
		for _, lineSize := range []int{16, 32, 64, 128, 256, 512} {
			got := capacityFor(elemSize, lineSize)
			want := referenceCapacity(elemSize, lineSize)
			require.Equal(t, want, got, "elemSize=%d lineSize=%d", elemSize, lineSize)
		}
	}
}

func TestCapacityFor_Bounds(t *testing.T) {
	// Oversized elements still get one slot.
	require.Equal(t, 1, capacityFor(1024, 64))
	// Tiny elements on a huge line are capped by the mask width.
	require.Equal(t, maskBits, capacityFor(1, 4096))
	// Zero-sized element types take the maximum.
	require.Equal(t, maskBits, capacityFor(0, 64))
}

func TestLayoutFor_BindsElementGeometry(t *testing.T) {
	lay := LayoutFor[int64](64)
	require.Equal(t, 64, lay.LineSize)
	require.Equal(t, uintptr(8), lay.elemSize)
	require.Equal(t, capacityFor(8, 64), lay.Capacity)
}

func TestLayoutFor_DetectedLineSize(t *testing.T) {
	lay := LayoutFor[byte](0)
	require.Positive(t, lay.LineSize)
	require.GreaterOrEqual(t, lay.Capacity, 1)
	require.LessOrEqual(t, lay.Capacity, maskBits)
}

func TestNodeCapacity_PerType(t *testing.T) {
	require.Equal(t, capacityFor(1, 64), NodeCapacity[byte](64))
	require.Equal(t, capacityFor(8, 64), NodeCapacity[int64](64))

	type wide struct{ a, b, c int64 }
	require.Equal(t, capacityFor(24, 64), NodeCapacity[wide](64))
	require.Equal(t, maskBits, NodeCapacity[struct{}](64))
}
