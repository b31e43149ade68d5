package middleware

import (
	"net"
	"net/http"
	"strconv"

	"grandhotel/shared"
	"grandhotel/shared/cache"
	"grandhotel/shared/constant"
	"grandhotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"

	bucketRead  = "read"
	bucketWrite = "write"
)

// RateLimit counts requests per client in a fixed window. Writes (bookings, inquiries,
// reviews, registrations) get their own, usually smaller, budget so a form spammer cannot
// starve the catalog. A broken cache never blocks a request.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limits := a.config.App.RateLimiter
			if !limits.Enable {
				next.ServeHTTP(w, r)

				return
			}

			bucket, limit := bucketRead, limits.MaxRequests
			if isWrite(r.Method) && limits.MaxWrites > 0 {
				bucket, limit = bucketWrite, limits.MaxWrites
			}

			key := shared.BuildCacheKey(cacheKeyRateLimit, bucket, a.getClientIP(r), a.getUA(r))

			var count int

			err := a.cache.Get(r.Context(), key, &count)

			switch {
			case err == nil:
				count++
			case cache.IsMiss(err):
				count = 1
			default:
				next.ServeHTTP(w, r)

				return
			}

			if count > limit {
				log.Warn().Str("bucket", bucket).Str("client", a.getClientIP(r)).Msg("rate limit exceeded")
				response.WithRequestLimitExceeded(w)

				return
			}

			if err := a.cache.Save(r.Context(), key, count, limits.WindowSeconds); err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limit))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limit-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limits.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return "unknown"
}

// getClientIP relies on chi's RealIP having already rewritten RemoteAddr from the proxy headers.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
