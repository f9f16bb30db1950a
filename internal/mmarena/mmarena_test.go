package mmarena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReserve_ReadWrite(t *testing.T) {
	region, release, err := Reserve(1 << 16)
	require.NoError(t, err)
	require.Len(t, region, 1<<16)

	for _, b := range region[:4096] {
		require.Zero(t, b, "fresh regions must be zeroed")
	}
	region[0] = 0xAA
	region[len(region)-1] = 0xBB
	require.Equal(t, byte(0xAA), region[0])
	require.Equal(t, byte(0xBB), region[len(region)-1])

	require.NoError(t, release())
	require.NoError(t, release(), "double release is a no-op")
}

func TestReserve_RejectsBadSize(t *testing.T) {
	_, _, err := Reserve(0)
	require.Error(t, err)
	_, _, err = Reserve(-1)
	require.Error(t, err)
}
