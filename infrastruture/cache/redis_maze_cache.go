package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix     = "vinom"
	defaultTTL        = time.Hour
	defaultLockExpiry = 10 * time.Second

	lockKeySuffix = ":build_lock"
)

// Options configures a RedisMazeCache.
type Options struct {
	Prefix     string        // Key prefix shared by every entry.
	TTL        time.Duration // Lifetime of a cached maze.
	LockExpiry time.Duration // Upper bound on how long a build lock is held.
}

// RedisMazeCache keeps built mazes in Redis with a TTL.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	opts   *Options
}

var _ i.MazeCache = &RedisMazeCache{}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and options.
func NewRedisMazeCache(client *redis.Client, opts *Options) (*RedisMazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}

	if opts.LockExpiry <= 0 {
		opts.LockExpiry = defaultLockExpiry
	}

	pool := goredis.NewPool(client)
	return &RedisMazeCache{
		client: client,
		locker: redsync.New(pool),
		opts:   opts,
	}, nil
}

// Get retrieves the payload stored under key.
func (c *RedisMazeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores payload under key for the configured TTL.
func (c *RedisMazeCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.client.Set(ctx, c.key(key), payload, c.opts.TTL).Err()
}

// Lock acquires the distributed build lock for key.
func (c *RedisMazeCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(c.key(key)+lockKeySuffix, redsync.WithExpiry(c.opts.LockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("obtaining build lock: %w", err)
	}

	return func() {
		// The lock expires on its own if the release fails.
		_, _ = mutex.Unlock()
	}, nil
}

func (c *RedisMazeCache) key(key string) string {
	return c.opts.Prefix + ":" + key
}
