package middleware

import (
	"cyclebook/shared"
	"cyclebook/shared/cache"
	"cyclebook/shared/constant"
	"cyclebook/transport/http/response"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per client and user agent in fixed windows.
// Cache failures let the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			if err != nil {
				if !errors.Is(err, cache.Nil) {
					log.Warn().Err(err).Msg("rate limiter unavailable")
					next.ServeHTTP(w, r)

					return
				}

				count = 1
			} else {
				count++
			}

			if count > maxReqs {
				setLimitHeaders(w, maxReqs, 0, windowSecs)
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
				next.ServeHTTP(w, r)

				return
			}

			setLimitHeaders(w, maxReqs, max(0, maxReqs-count), windowSecs)

			next.ServeHTTP(w, r)
		})
	}
}

func setLimitHeaders(w http.ResponseWriter, limit, remaining, window int) {
	w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limit))
	w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(remaining))
	w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(window))
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// first hop of X-Forwarded-For
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
