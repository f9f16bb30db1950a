//go:build !containersdebug

package unrolled

// debugCheck is compiled out unless the containersdebug build tag is
// set.
func (l *List[T]) debugCheck() {}
