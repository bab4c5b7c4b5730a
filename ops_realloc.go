package rangealloc

// TryReallocate attempts to resize alloc to newSize without moving its
// offset. Shrinking always succeeds: the freed tail
// is returned to the free set through the same coalescing path as
// Free. Growing only succeeds if the region immediately to the right
// of alloc is free and large enough to absorb the difference; it never
// searches elsewhere, since moving the data is the caller's job and
// this call promises not to invalidate alloc.Offset on failure.
//
// On success the returned Allocation replaces alloc; the caller must
// stop using alloc afterward. On failure alloc is returned unchanged
// and remains valid.
func (a *Allocator) TryReallocate(alloc Allocation, newSize uint32) (Allocation, bool) {
	if newSize == 0 {
		panicwrap(ErrorInvalidSize, "size must be >= 1")
	}

	a.checkFree(alloc)

	switch {
	case newSize == alloc.Size:
		a.trackAlloc(alloc)
		return alloc, true

	case newSize < alloc.Size:
		shrunk := Allocation{Offset: alloc.Offset, Size: newSize}
		a.free(alloc.Offset+newSize, alloc.Size-newSize)
		a.trackAlloc(shrunk)
		debugf("rangealloc: shrink offset=%v %v->%v", alloc.Offset, alloc.Size, newSize)
		return shrunk, true

	default:
		grow := newSize - alloc.Size
		end := alloc.End()

		rsize, ok := a.byOffset.Lookup(end)
		if !ok || rsize < grow {
			a.trackAlloc(alloc)
			debugf("rangealloc: grow refused offset=%v %v->%v", alloc.Offset, alloc.Size, newSize)
			return alloc, false
		}

		a.removeFree(end, rsize)
		if leftover := rsize - grow; leftover > 0 {
			a.insertFree(end+grow, leftover)
		}

		grown := Allocation{Offset: alloc.Offset, Size: newSize}
		a.trackAlloc(grown)
		debugf("rangealloc: grow offset=%v %v->%v", alloc.Offset, alloc.Size, newSize)
		return grown, true
	}
}
