//go:build debug
// +build debug

package rangealloc

import "fmt"

// trackAlloc records alloc into the live set. Built only with
// -tags debug; a production build never allocates this map (see
// production.go).
func (a *Allocator) trackAlloc(alloc Allocation) {
	if a.live == nil {
		a.live = make(map[Allocation]struct{})
	}
	a.live[alloc] = struct{}{}
}

// checkFree panics if alloc is not a currently-live token from this
// Allocator: a double free, a foreign token, or a synthetic value the
// caller fabricated. Only enforced in a debug build.
func (a *Allocator) checkFree(alloc Allocation) {
	if _, ok := a.live[alloc]; !ok {
		panic(fmt.Errorf("rangealloc: usage error: %+v is not a live allocation", alloc))
	}
	delete(a.live, alloc)
}

// resetLive drops the live set, called by Reset so a debug build does
// not keep flagging allocations from before the reset.
func (a *Allocator) resetLive() {
	a.live = nil
}
