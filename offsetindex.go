package rangealloc

import "rangealloc/internal/llrb"

// offsetIndex is the free-by-offset index: an ordered mapping
// offset -> size supporting the predecessor/successor probes
// coalescing depends on.
type offsetIndex struct {
	tree *llrb.Tree
}

func newOffsetIndex(source func() *llrb.Tree) offsetIndex {
	return offsetIndex{tree: source()}
}

func (idx offsetIndex) Len() int64 {
	return idx.tree.Len()
}

func (idx offsetIndex) Insert(offset, size uint32) {
	idx.tree.Insert(uint64(offset), uint64(size))
}

func (idx offsetIndex) Remove(offset uint32) (size uint32, ok bool) {
	val, ok := idx.tree.Delete(uint64(offset))
	return uint32(val), ok
}

func (idx offsetIndex) Lookup(offset uint32) (size uint32, ok bool) {
	val, ok := idx.tree.Get(uint64(offset))
	return uint32(val), ok
}

// PredecessorOf returns the entry with the greatest offset <= offset.
func (idx offsetIndex) PredecessorOf(offset uint32) (foundOffset, size uint32, ok bool) {
	k, v, ok := idx.tree.Floor(uint64(offset))
	return uint32(k), uint32(v), ok
}

// SuccessorOf returns the entry with the smallest offset >= offset.
func (idx offsetIndex) SuccessorOf(offset uint32) (foundOffset, size uint32, ok bool) {
	k, v, ok := idx.tree.Ceiling(uint64(offset))
	return uint32(k), uint32(v), ok
}

// Ascend visits every (offset, size) pair in ascending offset order.
func (idx offsetIndex) Ascend(fn func(offset, size uint32) bool) {
	idx.tree.Ascend(func(k, v uint64) bool {
		return fn(uint32(k), uint32(v))
	})
}

// regionIterator returns a finite, non-restartable, ascending-offset
// cursor, the backing sequence for ReportFreeRegions.
func (idx offsetIndex) regionIterator() *llrb.Iterator {
	return idx.tree.Iterator()
}
