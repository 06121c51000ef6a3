package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// windowScript counts hits in a fixed window and returns the count so far.
const windowScript = `
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return hits
`

// RedisLimiter shares fixed-window counters between API replicas. It fails
// open when Redis is unreachable.
type RedisLimiter struct {
	client  *redis.Client
	prefix  string
	script  *redis.Script
	timeout time.Duration
	logger  *slog.Logger
}

func NewRedisLimiter(client *redis.Client, prefix string) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client:  client,
		prefix:  prefix,
		script:  redis.NewScript(windowScript),
		timeout: 250 * time.Millisecond,
		logger:  slog.Default(),
	}
}

// WithLogger sets where fail-open events are reported.
func (l *RedisLimiter) WithLogger(logger *slog.Logger) *RedisLimiter {
	if l != nil && logger != nil {
		l.logger = logger
	}
	return l
}

func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil || key == "" || limit <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()
	hits, err := l.script.Run(ctx, l.client, []string{l.key(key)}, ttl).Int64()
	if err != nil {
		l.logger.Warn("rate limiter unavailable, allowing request", slog.String("error", err.Error()))
		return true
	}
	return hits <= int64(limit)
}

func (l *RedisLimiter) key(key string) string {
	if l.prefix == "" {
		return key
	}
	return l.prefix + ":" + key
}
