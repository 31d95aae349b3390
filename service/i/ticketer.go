package i

import (
	"time"
)

// Ticketer signs claims into opaque tickets and verifies them.
type Ticketer interface {
	// Issue creates a ticket carrying the given claims, valid for ttl.
	Issue(claims map[string]interface{}, ttl time.Duration) (string, error)

	// Parse validates a ticket and returns its claims.
	Parse(ticket string) (map[string]interface{}, error)
}
