package config

import "sync"

// diagnostics holds, at most, the first validated RunConfig,
// purely for log/metrics enrichment. It is write-once per process,
// guarded by sync.Once, and is never read on the allocation hot path
// — alloc, dpgrid and refine all receive their RunConfig as an
// explicit argument.
var (
	diagOnce sync.Once
	diagCfg  *RunConfig
)

// Remember records cfg as the process's diagnostic config, the first
// time it is called. Subsequent calls are no-ops, so later runs can
// never silently overwrite earlier diagnostics.
func Remember(cfg *RunConfig) {
	diagOnce.Do(func() {
		diagCfg = cfg
	})
}

// Last returns the config recorded by the first call to Remember, or
// nil if Remember has never been called. It exists only for
// diagnostic callers (e.g. a log formatter); no gridtied component
// reads it to make allocation decisions.
func Last() *RunConfig {
	return diagCfg
}
