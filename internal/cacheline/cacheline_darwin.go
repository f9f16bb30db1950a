package cacheline

import "golang.org/x/sys/unix"

func probe() int {
	n, err := unix.SysctlUint64("hw.cachelinesize")
	if err != nil || n == 0 {
		return DefaultSize
	}
	return int(n)
}
