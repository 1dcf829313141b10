package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SaimAkramGill/bewanted/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth защищает административные роуты статическим токеном
func AdminAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondForbidden(w, "admin token required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
