package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hobbiton-games/quiz-admin/internal/config"
	"github.com/rs/zerolog"
)

// AdminUsername is the only username accepted for basic auth.
const AdminUsername = "admin"

// AdminTokenHeader carries the shared-secret token scheme.
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth authorizes operator requests. Two independent schemes are
// accepted, either is sufficient:
//
//   - basic auth with username "admin" and the configured ADMIN_PASSWORD
//   - the X-Admin-Token header equal to the configured ADMIN_TOKEN
//
// With neither secret configured the middleware fails closed with 500 for
// every request, so a missing deployment secret can never open the API.
// Secrets are compared in constant time.
func AdminAuth(cfg config.AdminConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Password == "" && cfg.Token == "" {
				logger := zerolog.Ctx(r.Context())
				logger.Error().Str("path", r.URL.Path).Msg("admin secrets not configured; refusing request")
				writeAuthError(w, http.StatusInternalServerError, "server misconfigured")
				return
			}

			if authorized(r, cfg) {
				next.ServeHTTP(w, r)
				return
			}

			logger := zerolog.Ctx(r.Context())
			logger.Warn().Str("path", r.URL.Path).Str("method", r.Method).Msg("unauthorized admin request")
			w.Header().Set("WWW-Authenticate", `Basic realm="quiz-admin"`)
			writeAuthError(w, http.StatusUnauthorized, "unauthorized")
		})
	}
}

func authorized(r *http.Request, cfg config.AdminConfig) bool {
	if cfg.Password != "" {
		if username, password, ok := r.BasicAuth(); ok {
			if secureEqual(username, AdminUsername) && secureEqual(password, cfg.Password) {
				return true
			}
		}
	}
	if cfg.Token != "" {
		if token := strings.TrimSpace(r.Header.Get(AdminTokenHeader)); token != "" {
			if secureEqual(token, cfg.Token) {
				return true
			}
		}
	}
	return false
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
