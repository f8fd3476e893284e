package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/EduardoMSouza/consultorio-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	loginRateLimitWindow = time.Minute
	loginRateLimitMax    = 10
)

// RateLimitMiddleware throttles login attempts per client IP using a
// fixed window counter in Redis. Redis being down does not block logins.
type RateLimitMiddleware struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewRateLimitMiddleware(redisClient *redis.Client, log *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redisClient: redisClient,
		log:         log,
	}
}

func (m *RateLimitMiddleware) LimitLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := fmt.Sprintf("login_attempts:%s", clientIP(r))

		count, err := m.redisClient.Incr(r.Context(), key).Result()
		if err != nil {
			m.log.Warnf("Failed to increment rate limit counter: %+v", err)
			next.ServeHTTP(w, r)
			return
		}

		if count == 1 {
			if err := m.redisClient.Expire(r.Context(), key, loginRateLimitWindow).Err(); err != nil {
				m.log.Warnf("Failed to set rate limit expiry: %+v", err)
			}
		}

		if count > loginRateLimitMax {
			response.TooManyRequests(w, "Muitas tentativas de login. Tente novamente em instantes")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
