package middleware

import (
	"net/http"

	"backstage-api/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates a valid incoming X-Request-ID or issues a new one.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !utils.IsValidRequestID(id) {
				id = utils.GenerateRequestID()
			}

			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(utils.SetRequestID(r.Context(), id)))
		})
	}
}
