package preview

import (
	"net"
	"net/http"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"
	"github.com/rs/zerolog"
)

// rateLimit returns middleware limiting each client to rate requests per
// second with the given burst, keyed by remote host.
func rateLimit(rate, burst int, logger zerolog.Logger) func(http.Handler) http.Handler {
	limiter := ratelimit.New(&ratelimit.Config{
		Rate:     rate,
		Burst:    burst,
		Interval: time.Second,
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				key = r.RemoteAddr
			}
			if !limiter.Allow(r.Context(), key) {
				logger.Warn().Str("client", key).Str("path", r.URL.Path).Msg("rate limit exceeded")
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
