package middlewares

import (
	"context"
	"crypto/subtle"
	"hospital-portal-service/internal/pkg/constvars"
	"hospital-portal-service/internal/pkg/exceptions"
	"hospital-portal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RequireAdminAPIKey is the capability check on /api/admin routes. It only
// inspects the request header; service and store contracts know nothing
// about it. An unconfigured key rejects everything rather than failing open.
func (m *Middlewares) RequireAdminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if m.InternalConfig.App.AdminAPIKey == "" || apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAdminAPIKey(nil))
			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.InternalConfig.App.AdminAPIKey)) != 1 {
			m.Log.Warn("Admin API key rejected",
				zap.String("ip", r.RemoteAddr),
				zap.String("endpoint", r.URL.Path),
				zap.String("method", r.Method))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAdminAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_KEY_AUTH, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
