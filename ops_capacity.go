package rangealloc

import "rangealloc/api"

// GrowCapacity extends the managed range by additional bytes, appended
// past the current capacity. The new span starts free and coalesces
// with a free region already bordering the old capacity, the same way
// any other free does.
func (a *Allocator) GrowCapacity(additional uint32) {
	if additional == 0 {
		return
	}
	if uint64(a.capacity)+uint64(additional) > uint64(api.MaxCapacity) {
		panicwrap(ErrorOverflow, "capacity %v + %v overflows", a.capacity, additional)
	}

	old := a.capacity
	a.capacity += additional
	a.free(old, additional)

	debugf("rangealloc: grow_capacity %v->%v", old, a.capacity)
}

// Reset discards every outstanding allocation and free-region record
// and reinitializes the free set to the single region (0, Capacity()).
// It does not shrink or grow the managed range. Any Allocation issued
// before Reset must not be passed to Free or TryReallocate afterward.
func (a *Allocator) Reset() {
	a.byOffset = newOffsetIndex(a.newTree)
	a.bySize = newSizeIndex(a.newTree)
	a.total = 0
	a.resetLive()

	if a.capacity > 0 {
		a.insertFree(0, a.capacity)
	}
	debugf("rangealloc: reset capacity=%v", a.capacity)
}

// FreeRegion is one entry of the sequence ReportFreeRegions returns.
type FreeRegion struct {
	Offset uint32
	Size   uint32
}

// ReportFreeRegions returns every free region in ascending-offset
// order at the moment it is called. The allocator must not be
// mutated while the returned slice is being built; the slice itself
// is a snapshot and safe to keep afterward.
func (a *Allocator) ReportFreeRegions() []FreeRegion {
	regions := make([]FreeRegion, 0, a.byOffset.Len())
	it := a.byOffset.regionIterator()
	for {
		offset, size, ok := it.Next()
		if !ok {
			break
		}
		regions = append(regions, FreeRegion{Offset: uint32(offset), Size: uint32(size)})
	}
	return regions
}
