// Package lifecycle holds process lifecycle constants shared by infrastructure and delivery.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (pings, graceful shutdown, write drains).
const DefaultTimeout = 10 * time.Second
