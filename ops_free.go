package rangealloc

// Free releases a. Passing a token from a different Allocator,
// freeing it twice, or freeing a synthetic token with bogus
// offset/size is a usage error: behavior is undefined outside of a
// debug build (see debug.go). Such a token is not checked against the
// free set, so it can leave overlapping regions, mismatched indexes
// or a wrong TotalAvailable behind.
func (a *Allocator) Free(alloc Allocation) {
	a.checkFree(alloc)
	a.free(alloc.Offset, alloc.Size)
	debugf("rangealloc: free offset=%v size=%v", alloc.Offset, alloc.Size)
}

// free merges [f, f+n) with any immediately-adjacent free neighbors
// and inserts the (possibly extended) result. Coalescing is
// unconditional and immediate: there is no deferred-merge state.
func (a *Allocator) free(f, n uint32) {
	start, end := f, f+n

	if loff, lsize, ok := a.byOffset.PredecessorOf(start); ok && loff+lsize == start {
		a.removeFree(loff, lsize)
		start = loff
	}
	if roff, rsize, ok := a.byOffset.SuccessorOf(end); ok && roff == end {
		a.removeFree(roff, rsize)
		end = roff + rsize
	}

	a.insertFree(start, end-start)
}
