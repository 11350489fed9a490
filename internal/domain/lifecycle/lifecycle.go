// Package lifecycle holds timeouts shared by components started and stopped by fx.
package lifecycle

import "time"

// DefaultTimeout bounds start-up probes and graceful shutdown of servers and pools.
const DefaultTimeout = 10 * time.Second
