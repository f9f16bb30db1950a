package cacheline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSize_Sane(t *testing.T) {
	n := Size()
	require.GreaterOrEqual(t, n, 16)
	require.Zero(t, n&(n-1), "line size %d must be a power of two", n)
}

func TestSize_Stable(t *testing.T) {
	require.Equal(t, Size(), Size())
}
