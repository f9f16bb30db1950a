//go:build containersdebug

package unrolled

// debugCheck re-verifies every structural invariant after a mutation.
// Only compiled under the containersdebug build tag; production builds
// pay nothing.
func (l *List[T]) debugCheck() {
	if err := l.Verify(); err != nil {
		panic(err)
	}
}
