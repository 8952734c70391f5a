package bigfloat

import "go.uber.org/zap"

// pkgLogger is the package-wide structured logger used for cache
// instrumentation (pi and log cache hits, extensions, and coalesced
// concurrent requests). It defaults to a no-op logger so the package stays
// silent unless a caller opts in, the same default the teacher's
// dependency-free logging posture would take if it logged at all.
var pkgLogger = zap.NewNop().Sugar()

// SetLogger installs logger as the package-wide logger. Passing nil
// restores the no-op default.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		pkgLogger = zap.NewNop().Sugar()
		return
	}
	pkgLogger = logger.Sugar()
}
