// Package lifecycle holds timing constants shared by start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (pings, graceful shutdowns).
const DefaultTimeout = 10 * time.Second
