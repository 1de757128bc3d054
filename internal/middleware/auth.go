package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/Lixing-Zhang/grocify/internal/config"
)

// APIKeyHeader carries the deployment API key
const APIKeyHeader = "api_key"

// APIKeyAuth rejects requests whose api_key header is missing (401) or not
// one of the configured keys (403)
func APIKeyAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	keys := make([][]byte, len(cfg.APIKeys))
	for i, k := range cfg.APIKeys {
		keys[i] = []byte(k)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(APIKeyHeader)
			if apiKey == "" {
				writeAuthError(w, http.StatusUnauthorized, "API key required")
				return
			}

			if !validKey(keys, []byte(apiKey)) {
				writeAuthError(w, http.StatusForbidden, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func validKey(keys [][]byte, candidate []byte) bool {
	for _, k := range keys {
		if subtle.ConstantTimeCompare(k, candidate) == 1 {
			return true
		}
	}
	return false
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
