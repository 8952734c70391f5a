package bigfloat

import "sync/atomic"

// defaultRadix is the process-wide ambient radix consulted by [Pi] when a
// caller asks for pi without pinning a radix of its own (spec §6). It is
// the one ambient concern in this package deliberately left on the
// standard library: it is a single scalar flag read far more often than
// written, and sync/atomic already gives exactly the lock-free read path
// that matters without pulling in a config or feature-flag library for a
// single int.
var defaultRadix atomic.Int64

func init() {
	defaultRadix.Store(10)
}

// SetDefaultRadix installs radix as the process-wide default. radix must
// be in [2,36].
func SetDefaultRadix(radix int) error {
	if !validRadix(radix) {
		return newOperationalError("config", "radix out of range [2,36]")
	}
	defaultRadix.Store(int64(radix))
	return nil
}

// DefaultRadix returns the current process-wide default radix.
func DefaultRadix() int {
	return int(defaultRadix.Load())
}
