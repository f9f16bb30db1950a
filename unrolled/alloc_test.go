package unrolled

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// rangeRecorder is a ScanHook that records every registered range and
// checks Add/Remove pairing.
type rangeRecorder struct {
	adds    int
	removes int
	live    map[unsafe.Pointer]uintptr
}

func newRangeRecorder() *rangeRecorder {
	return &rangeRecorder{live: make(map[unsafe.Pointer]uintptr)}
}

func (r *rangeRecorder) AddRange(p unsafe.Pointer, size uintptr) {
	r.adds++
	r.live[p] = size
}

func (r *rangeRecorder) RemoveRange(p unsafe.Pointer) {
	r.removes++
	delete(r.live, p)
}

func TestHeapAllocator_NodeMatchesLayout(t *testing.T) {
	lay := LayoutFor[int64](64)
	a := NewHeapAllocator[int64](lay, nil)
	defer a.Close()

	n, err := a.AllocNode()
	require.NoError(t, err)
	require.Len(t, n.slots, lay.Capacity)
	require.Zero(t, n.used)
	require.Nil(t, n.next)
	require.Nil(t, n.prev)
	require.Equal(t, lay, a.Layout())
	a.FreeNode(n)
}

func TestCheckedAllocator_Balance(t *testing.T) {
	checked := NewCheckedAllocator(NewHeapAllocator[int64](LayoutFor[int64](64), nil))
	l := NewWithAllocator[int64](checked)

	for i := int64(0); i < 100; i++ {
		l.PushBack(i)
	}
	st := checked.Stats()
	require.Positive(t, st.Allocs)
	require.Equal(t, st.Allocs-st.Frees, st.Live)

	for i := int64(0); i < 100; i++ {
		require.True(t, l.Remove(i))
	}
	st = checked.Stats()
	require.Equal(t, st.Allocs, st.Frees, "every node must be returned")
	require.Zero(t, st.Live)
	require.NoError(t, l.Close())
}

func TestCheckedAllocator_DoubleFreePanics(t *testing.T) {
	checked := NewCheckedAllocator(NewHeapAllocator[int64](LayoutFor[int64](64), nil))
	n, err := checked.AllocNode()
	require.NoError(t, err)

	checked.FreeNode(n)
	require.Panics(t, func() { checked.FreeNode(n) })
}

func TestCheckedAllocator_ForeignNodePanics(t *testing.T) {
	checked := NewCheckedAllocator(NewHeapAllocator[int64](LayoutFor[int64](64), nil))
	foreign := &Node[int64]{slots: make([]int64, 4)}
	require.Panics(t, func() { checked.FreeNode(foreign) })
}

func TestScanHook_BracketsNodeLifetimes(t *testing.T) {
	rec := newRangeRecorder()
	lay := LayoutFor[int64](64)
	l := NewWithAllocator[int64](NewHeapAllocator[int64](lay, rec))

	for i := int64(0); i < 50; i++ {
		l.PushBack(i)
	}
	require.Positive(t, rec.adds)
	require.Len(t, rec.live, rec.adds-rec.removes)
	for _, size := range rec.live {
		require.GreaterOrEqual(t, size, lay.elemSize*uintptr(lay.Capacity))
	}

	l.Clear()
	require.Equal(t, rec.adds, rec.removes, "ranges must be removed on deallocation")
	require.Empty(t, rec.live)
	require.NoError(t, l.Close())
}
