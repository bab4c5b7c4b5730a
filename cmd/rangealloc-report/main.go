// Command rangealloc-report exercises an Allocator with a small
// scripted alloc/free/grow-capacity sequence and prints its free-set
// report alongside host memory.
package main

import "flag"
import "fmt"
import "math/rand"

import "github.com/cloudfoundry/gosigar"
import hm "github.com/dustin/go-humanize"

import "rangealloc"
import "rangealloc/api"

var options struct {
	capacity   int
	iterations int
	maxsize    int
	arena      bool
	arenanodes int
	verbose    bool
}

func argParse() {
	flag.IntVar(&options.capacity, "capacity", 64*1024*1024,
		"size of the simulated external pool")
	flag.IntVar(&options.iterations, "n", 10000,
		"number of alloc/free operations to script")
	flag.IntVar(&options.maxsize, "maxsize", 4096,
		"largest single allocation to request")
	flag.BoolVar(&options.arena, "arena", false,
		"back the ordered indexes with a fixed node arena instead of the heap")
	flag.IntVar(&options.arenanodes, "arenanodes", 1<<20,
		"node-arena capacity when -arena is set")
	flag.BoolVar(&options.verbose, "v", false,
		"log every alloc, free and grow_capacity")
	flag.Parse()
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}

func main() {
	argParse()

	if options.verbose {
		rangealloc.EnableLogging()
	}

	setts := rangealloc.DefaultSettings()
	if options.arena {
		setts["nodesource"] = "arena"
		setts["arena.nodes"] = int64(options.arenanodes)
	}

	a := rangealloc.NewAllocator(uint32(options.capacity), setts)
	live := script(a)

	fmt.Println(a.String())
	fmt.Printf("live allocations at exit: %d\n", len(live))

	if regions := a.ReportFreeRegions(); options.verbose {
		fmt.Printf("free regions: %d\n", len(regions))
		for _, r := range regions {
			fmt.Printf("  [%d, %d) size=%s\n", r.Offset, r.Offset+r.Size, hm.Bytes(uint64(r.Size)))
		}
	}

	total, used, free := getsysmem()
	fmt.Printf("host memory: total=%s used=%s free=%s\n",
		hm.Bytes(total), hm.Bytes(used), hm.Bytes(free))
}

// script drives a fixed pseudo-random sequence of Alloc/Free calls
// against a and returns the allocations still outstanding at the end.
// Once a third of the iterations have run, it grows the capacity by a
// quarter of -capacity, exercising GrowCapacity mid-run. It takes the narrow api.Allocator
// contract rather than the concrete type, since it never needs
// anything beyond Alloc/Free/GrowCapacity.
func script(a api.Allocator) []api.Region {
	rng := rand.New(rand.NewSource(1))
	live := make([]api.Region, 0, options.iterations)

	for i := 0; i < options.iterations; i++ {
		if i == options.iterations/3 {
			a.GrowCapacity(uint32(options.capacity / 4))
		}

		if len(live) > 0 && rng.Intn(3) == 0 {
			idx := rng.Intn(len(live))
			a.Free(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
			continue
		}

		size := uint32(rng.Intn(options.maxsize) + 1)
		if alloc, ok := a.Alloc(size); ok {
			live = append(live, alloc)
		}
	}
	return live
}
