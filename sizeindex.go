package rangealloc

import "rangealloc/internal/llrb"

// sizeIndex is the free-by-size index: an ordered set of (size, offset)
// pairs, lexicographically sorted on size first, supporting the
// best-fit lower-bound probe.
//
// Both fields fit in 32 bits, so the pair is packed into a single
// uint64 key (size in the high word, offset in the low word) instead
// of a composite-key comparator: ordinary uint64 ordering already
// sorts by size and then, on ties, by offset — exactly the
// smallest-offset tie-break best-fit selection needs.
type sizeIndex struct {
	tree *llrb.Tree
}

func newSizeIndex(source func() *llrb.Tree) sizeIndex {
	return sizeIndex{tree: source()}
}

func packSizeOffset(size, offset uint32) uint64 {
	return uint64(size)<<32 | uint64(offset)
}

func unpackSizeOffset(key uint64) (size, offset uint32) {
	return uint32(key >> 32), uint32(key)
}

func (idx sizeIndex) Len() int64 {
	return idx.tree.Len()
}

func (idx sizeIndex) Insert(size, offset uint32) {
	idx.tree.Insert(packSizeOffset(size, offset), 0)
}

func (idx sizeIndex) Remove(size, offset uint32) bool {
	_, ok := idx.tree.Delete(packSizeOffset(size, offset))
	return ok
}

// LowerBound returns the smallest free region whose size is >= size,
// breaking ties toward the smallest offset — the best-fit candidate.
func (idx sizeIndex) LowerBound(size uint32) (foundSize, offset uint32, ok bool) {
	k, _, ok := idx.tree.Ceiling(packSizeOffset(size, 0))
	if !ok {
		return 0, 0, false
	}
	foundSize, offset = unpackSizeOffset(k)
	return foundSize, offset, true
}

// Max returns the largest free region by size.
func (idx sizeIndex) Max() (size, offset uint32, ok bool) {
	k, _, ok := idx.tree.Max()
	if !ok {
		return 0, 0, false
	}
	size, offset = unpackSizeOffset(k)
	return size, offset, true
}
