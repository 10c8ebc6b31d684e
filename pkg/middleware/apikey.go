package middleware

import (
	"crypto/subtle"
	"net/http"

	"backstage-api/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const APIKeyHeader = "X-API-Key"

// APIKey rejects requests whose X-API-Key does not match the configured
// secret with 403, before the handler runs. A bcrypt hash, when configured,
// takes precedence over the plain secret.
func APIKey(config utils.AuthConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	log := logger.With(zap.String("middleware", "api_key"))
	hash := []byte(config.SecretKeyHash)
	secret := []byte(config.SecretKey)

	matches := func(key string) bool {
		if key == "" {
			return false
		}
		if len(hash) > 0 {
			return bcrypt.CompareHashAndPassword(hash, []byte(key)) == nil
		}
		return len(secret) > 0 && subtle.ConstantTimeCompare([]byte(key), secret) == 1
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !matches(r.Header.Get(APIKeyHeader)) {
				requestID, _ := utils.GetRequestID(r.Context())
				log.Warn("Rejected request with invalid API key",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("request_id", requestID),
					zap.Bool("key_present", r.Header.Get(APIKeyHeader) != ""),
				)
				utils.ResponseForbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
