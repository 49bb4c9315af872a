package http

import (
	"encoding/json"
	"net/http"

	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
	"github.com/kurobe2240/NFT-EC/internal/security"
)

const csrfHeader = "X-CSRF-Token"

// CSRFGuard rejects mutating requests that do not carry the current
// anti-forgery token. Safe methods pass through untouched.
func CSRFGuard(csrf *security.CSRFManager, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			if !csrf.Validate(r.Context(), r.Header.Get(csrfHeader)) {
				log.Warnf("Rejected %s %s: missing or invalid csrf token", r.Method, r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(errorResponse{Error: "invalid csrf token"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs every request at debug level.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debugf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}
