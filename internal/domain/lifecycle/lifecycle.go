// Package lifecycle holds shared start/stop conventions for fx-managed
// components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of infrastructure
// components (database pings, HTTP server drain).
const DefaultTimeout = 15 * time.Second
