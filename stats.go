package rangealloc

import "fmt"

import "github.com/dustin/go-humanize"

import "rangealloc/lib"

// Stats summarizes the current free set: how many free regions exist,
// how their sizes are distributed, and how fragmented the pool is.
// Fragmentation is 1 - (largest free region / total free), so 0 means
// the free bytes form one contiguous span and a value near 1 means
// they are scattered across many small regions.
type Stats struct {
	Capacity        uint32
	TotalAvailable  uint32
	LargestFree     uint32
	FreeRegionCount int64
	Fragmentation   float64
	RegionSizes     lib.AverageInt64
	RegionHistogram *lib.HistogramInt64
}

// Stats walks the free-by-offset index once and reports on the free
// set's shape, the way an LLRB tree's Stats reports on tree shape.
// RegionHistogram is nil for a zero-capacity allocator.
func (a *Allocator) Stats() Stats {
	st := Stats{
		Capacity:       a.capacity,
		TotalAvailable: a.total,
		LargestFree:    a.LargestAvailable(),
	}
	if a.capacity > 0 {
		width := int64(a.capacity) / 16
		if width < 1 {
			width = 1
		}
		st.RegionHistogram = lib.NewhistorgramInt64(0, int64(a.capacity), width)
	}
	a.byOffset.Ascend(func(offset, size uint32) bool {
		st.FreeRegionCount++
		st.RegionSizes.Add(int64(size))
		if st.RegionHistogram != nil {
			st.RegionHistogram.Add(int64(size))
		}
		return true
	})
	if st.TotalAvailable > 0 {
		st.Fragmentation = 1 - float64(st.LargestFree)/float64(st.TotalAvailable)
	}
	return st
}

// String renders a Stats in human-readable form, sizes rendered with
// go-humanize the way a tools/ command line reports byte counts.
func (st Stats) String() string {
	s := fmt.Sprintf(
		"capacity=%s available=%s (%.1f%%) largest=%s regions=%d fragmentation=%.3f mean-region=%s",
		humanize.Bytes(uint64(st.Capacity)),
		humanize.Bytes(uint64(st.TotalAvailable)),
		100*float64(st.TotalAvailable)/float64(maxu32(st.Capacity, 1)),
		humanize.Bytes(uint64(st.LargestFree)),
		st.FreeRegionCount,
		st.Fragmentation,
		humanize.Bytes(uint64(st.RegionSizes.Mean())),
	)
	if st.RegionHistogram != nil {
		s += " region-histogram=" + st.RegionHistogram.Logstring()
	}
	return s
}

func maxu32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// String renders the Allocator's current Stats.
func (a *Allocator) String() string {
	return a.Stats().String()
}
