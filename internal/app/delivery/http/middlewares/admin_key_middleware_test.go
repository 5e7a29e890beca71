package middlewares

import (
	"hospital-portal-service/internal/app/config"
	"hospital-portal-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newAdminKeyHandler(t *testing.T, configuredKey string) http.Handler {
	middlewares := NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{AdminAPIKey: configuredKey},
	}, nil)

	return middlewares.RequireAdminAPIKey(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorized, _ := r.Context().Value(constvars.CONTEXT_ADMIN_KEY_AUTH).(bool)
		assert.True(t, authorized, "downstream handlers should see the capability flag")
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireAdminAPIKey(t *testing.T) {
	const configuredKey = "super-secret-admin-key"

	testCases := []struct {
		name          string
		configuredKey string
		headerKey     string
		expectedCode  int
	}{
		{
			name:          "Matching Key Passes Through",
			configuredKey: configuredKey,
			headerKey:     configuredKey,
			expectedCode:  http.StatusOK,
		},
		{
			name:          "Missing Header Is Unauthorized",
			configuredKey: configuredKey,
			headerKey:     "",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "Wrong Key Is Unauthorized",
			configuredKey: configuredKey,
			headerKey:     "guessed-key",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "Unconfigured Key Rejects Everything",
			configuredKey: "",
			headerKey:     "anything",
			expectedCode:  http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := newAdminKeyHandler(t, tc.configuredKey)

			request := httptest.NewRequest("GET", "/api/admin/registrations", nil)
			if tc.headerKey != "" {
				request.Header.Set(constvars.HeaderXAPIKey, tc.headerKey)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, request)

			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode != http.StatusOK {
				assert.Contains(t, rr.Body.String(), `"success":false`)
			}
		})
	}
}
