package middleware

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/step-tracker/pkg/problem"
	"github.com/redis/go-redis/v9"
)

// RateLimit is a fixed-window limiter keyed by client IP and backed by redis.
// When redis is unreachable requests pass through.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := fmt.Sprintf("rate_limit:%s", clientIP(r))

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				log.Printf("[ratelimit] redis error, limiter skipped: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			if count == 1 {
				if err := rdb.Expire(ctx, key, window).Err(); err != nil {
					// A key without TTL would block the client forever
					log.Printf("[ratelimit] redis expire error: %v, deleting key", err)
					rdb.Del(ctx, key)
					next.ServeHTTP(w, r)
					return
				}
			}

			ttl, err := rdb.TTL(ctx, key).Result()
			if err != nil || ttl < 0 {
				ttl = window
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(limit)-count), 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

			if count > int64(limit) {
				w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				problem.TooManyRequests(fmt.Sprintf("Rate limit of %d requests exceeded, retry in %ds", limit, int(ttl.Seconds()))).WriteFor(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers RemoteAddr, which chi's RealIP middleware rewrites from
// forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
