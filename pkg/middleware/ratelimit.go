package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Zonda001/AirportAPI/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit is a fixed-window limiter keyed by client IP, backed by
// redis INCR + EXPIRE. A nil client or disabled config degrades to a
// pass-through so the API keeps working without redis.
func RateLimit(cfg utils.RedisConfig, rdb *redis.Client, logger *zap.Logger) func(http.Handler) http.Handler {
	if !cfg.RateLimitEnable || rdb == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	window := time.Duration(cfg.RateWindowSecs) * time.Second

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := fmt.Sprintf("ratelimit:%s", ip)

			ctx := r.Context()
			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				// Redis being down must not take the API with it
				logger.Warn("Rate limiter unavailable", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(ctx, key, window)
			}

			if count > int64(cfg.RateLimit) {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.Int64("count", count),
				)
				utils.ResponseTooManyRequests(w, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NewRedisClient connects to redis for rate limiting. Returns nil when
// no address is configured or the server cannot be reached; callers
// treat nil as "rate limiting disabled".
func NewRedisClient(cfg utils.RedisConfig, logger *zap.Logger) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, rate limiting disabled", zap.Error(err))
		return nil
	}

	return client
}
