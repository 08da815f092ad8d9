package host

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spotlight-tour/spotlight/pkg/errors"
	"github.com/spotlight-tour/spotlight/pkg/observability"
)

// RedisConfig configures a Redis-backed settings store.
type RedisConfig struct {
	// Addr is the Redis server address (host:port).
	Addr string

	// Password is optional.
	Password string

	// DB selects the logical database (default 0).
	DB int

	// Tour names the tour whose settings this store holds.
	Tour string
}

// RedisStore keeps a tour's settings in a single Redis hash, keyed
// "spotlight:tour:<name>". Suitable for multi-instance deployments where
// several overlay servers share one authored tour.
type RedisStore struct {
	mu      sync.Mutex
	client  *redis.Client
	key     string
	pending []pendingOp
}

// NewRedisStore connects to Redis and returns a settings store.
// The connection is verified with a ping before returning.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if err := errors.ValidateTourName(cfg.Tour); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect to redis at %s", cfg.Addr)
	}

	return &RedisStore{
		client: client,
		key:    "spotlight:tour:" + cfg.Tour,
	}, nil
}

// All reads the committed settings hash.
func (s *RedisStore) All(ctx context.Context) (map[string]string, error) {
	settings, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		err = errors.Wrap(errors.ErrCodeStoreUnavailable, err, "read settings hash")
		settings = nil
	}
	if settings == nil && err == nil {
		settings = map[string]string{}
	}
	observability.Store().OnLoad(BackendRedis, len(settings), err)
	return settings, err
}

// Set buffers a field write.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, pendingOp{key: key, value: value})
	return nil
}

// Erase buffers a field removal.
func (s *RedisStore) Erase(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, pendingOp{key: key, erase: true})
	return nil
}

// Commit replays buffered mutations through a single pipeline.
func (s *RedisStore) Commit(ctx context.Context) error {
	start := time.Now()
	s.mu.Lock()
	ops := s.pending
	s.mu.Unlock()

	pipe := s.client.Pipeline()
	for _, op := range ops {
		if op.erase {
			pipe.HDel(ctx, s.key, op.key)
		} else {
			pipe.HSet(ctx, s.key, op.key, op.value)
		}
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeCommitFailed, err, "commit settings hash")
	} else {
		s.mu.Lock()
		s.pending = nil
		s.mu.Unlock()
	}
	observability.Store().OnCommit(BackendRedis, len(ops), time.Since(start), err)
	return err
}

// Close discards pending mutations and closes the connection.
func (s *RedisStore) Close() error {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
	return s.client.Close()
}

var _ SettingsStore = (*RedisStore)(nil)
