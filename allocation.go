package rangealloc

import "rangealloc/api"

// Allocation is the opaque token returned by Alloc/AllocWithAlign and
// consumed by Free/TryReallocate. It carries no reference back to the
// Allocator that issued it and no callback — freeing it twice, or on a
// different Allocator, is a usage error that this package does not
// detect outside of debug builds (see debug.go).
type Allocation = api.Region
