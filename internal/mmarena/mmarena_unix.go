//go:build unix

package mmarena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Reserve maps size bytes of zeroed, page-aligned anonymous memory and
// returns the region plus a release func. Releasing twice is a no-op.
func Reserve(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmarena: invalid region size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmarena: mmap %d bytes: %w", size, err)
	}
	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		return unix.Munmap(data)
	}
	return data, release, nil
}
