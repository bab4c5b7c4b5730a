package rangealloc

import "rangealloc/api"

// Re-exported for callers that only import the root package, the way
// gostore's top-level errors.go re-declares sentinels its subpackages
// define.
var (
	ErrorInvalidSize  = api.ErrorInvalidSize
	ErrorInvalidAlign = api.ErrorInvalidAlign
	ErrorOverflow     = api.ErrorOverflow
)
