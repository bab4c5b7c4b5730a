package api

import "errors"

// ErrorInvalidSize is wrapped in the panic raised for size == 0.
var ErrorInvalidSize = errors.New("rangealloc.invalidsize")

// ErrorInvalidAlign is wrapped in the panic raised when align is not a
// power of two.
var ErrorInvalidAlign = errors.New("rangealloc.invalidalign")

// ErrorOverflow is wrapped in the panic raised when size+align-1 or
// capacity+additional would exceed the uint32 range.
var ErrorOverflow = errors.New("rangealloc.overflow")

// MaxCapacity is the largest capacity a single Allocator can manage,
// the full uint32 range this module's offsets and sizes are drawn
// from — a 4GiB bound appropriate to GPU-buffer suballocation.
const MaxCapacity = uint32(0xffffffff)
