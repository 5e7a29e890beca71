package middlewares

import (
	"hospital-portal-service/internal/app/services/shared/ratelimiter"
	"hospital-portal-service/internal/pkg/constvars"
	"hospital-portal-service/internal/pkg/exceptions"
	"hospital-portal-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
)

// LimitSubmissions throttles registration submissions per client IP through
// the Redis fixed-window limiter. Without Redis it passes requests through;
// a limiter error also lets the request through (a broken limiter must not
// take the intake endpoint down with it).
func (m *Middlewares) LimitSubmissions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.SubmissionLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		clientKey, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			clientKey = r.RemoteAddr
		}

		result, err := m.SubmissionLimiter.Allow(r.Context(), &ratelimiter.AllowInput{
			ClientKey:         clientKey,
			WindowDurationSec: m.InternalConfig.App.SubmissionWindowSeconds,
			MaxQuota:          m.InternalConfig.App.SubmissionMaxPerWindow,
		})
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		if !result.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(result.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
