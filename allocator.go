// Package rangealloc implements a soft-realtime best-fit suballocator
// over an external memory pool: it manages offsets and lengths within
// a virtual range [0, capacity) and hands out (offset, size) tokens a
// caller uses to index into its own buffer. The allocator never reads
// or writes that buffer.
//
// The type is single-owner and not safe for concurrent use; wrap it in
// a mutex if it must be shared across goroutines.
package rangealloc

import s "github.com/prataprc/gosettings"

import "rangealloc/api"
import "rangealloc/internal/llrb"

// Allocator manages the free-region bookkeeping for a single external
// pool. Two ordered indexes over the same free set — one keyed by
// offset, one keyed by (size, offset) — give worst-case O(log n)
// best-fit search, insertion, removal and coalescing.
type Allocator struct {
	capacity uint32
	total    uint32 // total_available, maintained incrementally
	byOffset offsetIndex
	bySize   sizeIndex

	nodesArena string        // "heap" or "arena", the node source chosen at construction
	newTree    func() *llrb.Tree // node-source factory, reused by Reset

	// live is the optional debug-mode side set of outstanding
	// allocations, used for usage-error detection. It stays nil, and
	// untouched, in a production build (see debug.go / production.go).
	live map[Allocation]struct{}
}

// *Allocator satisfies api.Allocator, so callers that only need the
// narrow contract can depend on the interface instead of this
// concrete type.
var _ api.Allocator = (*Allocator)(nil)

// NewAllocator constructs an Allocator over [0, capacity). If capacity
// is greater than zero the free set starts as the single region
// (0, capacity); an allocator constructed with capacity zero starts
// with an empty free set and must be grown before it can allocate.
//
// setts is typically DefaultSettings(), mutated for the caller's
// node-source choice; a nil setts is treated as DefaultSettings().
func NewAllocator(capacity uint32, setts s.Settings) *Allocator {
	if setts == nil {
		setts = DefaultSettings()
	}
	nodesource, arenaNodes := parseNodeSource(setts)

	a := &Allocator{
		capacity:   capacity,
		nodesArena: nodesource,
		newTree:    func() *llrb.Tree { return newTree(nodesource, arenaNodes) },
	}
	a.byOffset = newOffsetIndex(a.newTree)
	a.bySize = newSizeIndex(a.newTree)

	if capacity > 0 {
		a.insertFree(0, capacity)
	}
	return a
}

func parseNodeSource(setts s.Settings) (source string, arenaNodes int64) {
	source = "heap"
	if v, ok := setts["nodesource"]; ok {
		src, ok := v.(string)
		if !ok {
			panicerr("rangealloc: settings %q must be a string", "nodesource")
		}
		source = src
	}
	if source != "heap" && source != "arena" {
		panicerr("rangealloc: unknown nodesource %q", source)
	}
	if source == "arena" {
		v, ok := setts["arena.nodes"]
		if !ok {
			panicerr("rangealloc: settings %q required when nodesource is arena", "arena.nodes")
		}
		n, ok := toInt64(v)
		if !ok || n <= 0 {
			panicerr("rangealloc: settings %q must be a positive integer", "arena.nodes")
		}
		arenaNodes = n
	}
	return source, arenaNodes
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	}
	return 0, false
}

func newTree(source string, arenaNodes int64) *llrb.Tree {
	if source == "arena" {
		return llrb.NewWithArena(int(arenaNodes))
	}
	return llrb.New()
}

// insertFree adds a free region to both indexes and the running total.
// Callers are responsible for coalescing before calling this; it does
// not check adjacency.
func (a *Allocator) insertFree(offset, size uint32) {
	a.byOffset.Insert(offset, size)
	a.bySize.Insert(size, offset)
	a.total += size
}

// removeFree removes an exact (offset, size) free region from both
// indexes and the running total.
func (a *Allocator) removeFree(offset, size uint32) {
	a.byOffset.Remove(offset)
	a.bySize.Remove(size, offset)
	a.total -= size
}

// Capacity returns the size of the managed range.
func (a *Allocator) Capacity() uint32 {
	return a.capacity
}

// TotalAvailable returns the sum of sizes of all free regions.
func (a *Allocator) TotalAvailable() uint32 {
	return a.total
}

// LargestAvailable returns the size of the largest free region, or 0
// if none exists.
func (a *Allocator) LargestAvailable() uint32 {
	size, _, ok := a.bySize.Max()
	if !ok {
		return 0
	}
	return size
}

// IsEmpty reports whether every byte of the managed range is free.
func (a *Allocator) IsEmpty() bool {
	return a.total == a.capacity
}
