//go:build !unix

package mmarena

import "fmt"

// Reserve falls back to an ordinary heap slice on platforms without
// mmap. The caller keeps the region alive through the returned slice,
// so pointers threaded inside it stay valid even though the collector
// never scans them.
func Reserve(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmarena: invalid region size %d", size)
	}
	data := make([]byte, size)
	return data, func() error { return nil }, nil
}
