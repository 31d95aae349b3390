package i

import "context"

// MazeCache stores built mazes between requests.
type MazeCache interface {
	// Get returns the payload stored under key. The boolean is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores payload under key, replacing any previous value.
	Set(ctx context.Context, key string, payload []byte) error

	// Lock takes an exclusive lock on key so only one caller builds a missing
	// entry. The returned function releases it.
	Lock(ctx context.Context, key string) (func(), error)
}
