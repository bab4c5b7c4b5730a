package rangealloc

import "rangealloc/api"
import "rangealloc/lib"

// Alloc requests size bytes with no alignment constraint beyond 1. It
// is equivalent to AllocWithAlign(size, 1).
func (a *Allocator) Alloc(size uint32) (Allocation, bool) {
	return a.AllocWithAlign(size, 1)
}

// AllocWithAlign requests size bytes at an offset that is a multiple
// of align. size must be >= 1 and align must be a power of two;
// violating either is an invalid-input usage error and panics rather
// than returning an error, since it is never a runtime condition a
// caller can recover from — it means the caller passed a malformed
// request.
func (a *Allocator) AllocWithAlign(size, align uint32) (Allocation, bool) {
	if size == 0 {
		panicwrap(ErrorInvalidSize, "size must be >= 1")
	}
	if align == 0 || !lib.Bit32(align).IsPowerOfTwo() {
		panicwrap(ErrorInvalidAlign, "align %v is not a power of two", align)
	}
	if uint64(size)+uint64(align)-1 > uint64(api.MaxCapacity) {
		panicwrap(ErrorOverflow, "size %v with align %v overflows", size, align)
	}

	// The tight upper bound on the length a region must have to
	// satisfy this request regardless of its own start offset: any
	// free region of at least this size is guaranteed to fit, so a
	// single lower-bound probe suffices without scanning candidates
	// for alignment.
	sEff := size + align - 1

	foundSize, offset, ok := a.bySize.LowerBound(sEff)
	if !ok {
		debugf("rangealloc: out of memory for size=%v align=%v", size, align)
		return Allocation{}, false
	}

	aligned := lib.CeilAlign(offset, align)
	leftPad := aligned - offset
	tail := (offset + foundSize) - (aligned + size)

	a.removeFree(offset, foundSize)
	if leftPad > 0 {
		a.insertFree(offset, leftPad)
	}
	if tail > 0 {
		a.insertFree(aligned+size, tail)
	}

	debugf("rangealloc: alloc offset=%v size=%v align=%v (from region %v/%v)",
		aligned, size, align, offset, foundSize)

	alloc := Allocation{Offset: aligned, Size: size}
	a.trackAlloc(alloc)
	return alloc, true
}
