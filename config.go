package rangealloc

import "fmt"

import s "github.com/prataprc/gosettings"

// DefaultSettings returns the settings NewAllocator uses when none are
// supplied, the way malloc.Defaultsettings and llrb.Defaultsettings do
// for their own constructors.
//
// "nodesource" (string, default: "heap")
//		Dynamic-memory source backing the two internal ordered
//		indexes' tree nodes. "heap" draws nodes from the Go heap,
//		amortized and unbounded (the soft-realtime mode).
//		"arena" draws from a fixed-capacity preallocated pool sized by
//		"arena.nodes"; once exhausted, further splits/inserts panic
//		rather than grow (§9's hard-realtime substitution).
//
// "arena.nodes" (int64, default: 0)
//		Number of node slots to preallocate per index when
//		"nodesource" is "arena". Required (> 0) in that mode.
func DefaultSettings() s.Settings {
	return s.Settings{
		"nodesource":  "heap",
		"arena.nodes": int64(0),
	}
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

// panicwrap panics with an error wrapping sentinel, so callers that
// recover can still match it with errors.Is.
func panicwrap(sentinel error, fmsg string, args ...interface{}) {
	msg := fmt.Sprintf(fmsg, args...)
	panic(fmt.Errorf("rangealloc: %s: %w", msg, sentinel))
}
