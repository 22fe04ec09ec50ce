package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/response"
)

const rateLimitKeyPrefix = "kanban:ratelimit:"

// RateLimiter is a sliding-window limiter backed by a Redis sorted set
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window
func NewRateLimiter(client *redis.Client, limit int, window time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
		logger: logger,
		now:    time.Now,
	}
}

// Allow records one request for key and reports whether it fits in the window.
// Trim, add and count run in one MULTI/EXEC so concurrent requests cannot all
// observe a count below the limit. A rejected request is removed again and
// does not use up the window.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	fullKey := rateLimitKeyPrefix + key
	now := l.now().UnixNano()
	windowStart := now - l.window.Nanoseconds()
	member := fmt.Sprintf("%d-%s", now, uuid.NewString())

	var countCmd *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, fullKey, "0", strconv.FormatInt(windowStart, 10))
		pipe.ZAdd(ctx, fullKey, &redis.Z{Score: float64(now), Member: member})
		countCmd = pipe.ZCard(ctx, fullKey)
		pipe.Expire(ctx, fullKey, l.window)
		return nil
	})
	if err != nil {
		return false, err
	}

	if countCmd.Val() > int64(l.limit) {
		if err := l.client.ZRem(ctx, fullKey, member).Err(); err != nil {
			l.logger.Warn("Failed to drop rejected request from rate window", zap.String("key", fullKey), zap.Error(err))
		}
		return false, nil
	}
	return true, nil
}

// Middleware limits requests per authenticated user, falling back to the
// client IP. scope separates counters of different routes. Requests are let
// through when Redis is unavailable.
func (l *RateLimiter) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.client == nil || l.limit <= 0 {
			c.Next()
			return
		}

		subject := "ip:" + c.ClientIP()
		if v, ok := c.Get(ContextUserID); ok {
			if id, ok := v.(uuid.UUID); ok && id != uuid.Nil {
				subject = "user:" + id.String()
			}
		}

		allowed, err := l.Allow(c.Request.Context(), scope+":"+subject)
		if err != nil {
			l.logger.Warn("Rate limiter unavailable, allowing request",
				zap.String("scope", scope),
				zap.Error(err),
			)
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			response.SendError(c, http.StatusTooManyRequests, response.ErrCodeRateLimited, "Too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
