package rangealloc

import "sync/atomic"

import "github.com/prataprc/golog"

// logok gates every log call on this package's hot path to a single
// atomic load, so an embedding application that never calls
// EnableLogging pays nothing for logging beyond that check — mirrors
// llrb/log.go's logok switch.
var logok int64

// EnableLogging turns on structured logging of coalesce, split and
// out-of-memory events. Logging is off by default: allocation and
// free are meant to be as close to free as a tree walk allows, and a
// hot path with disabled log lines still is not disabled Printf.
func EnableLogging() {
	atomic.StoreInt64(&logok, 1)
}

func debugf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Debugf(format, v...)
	}
}

func warnf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Warnf(format, v...)
	}
}
