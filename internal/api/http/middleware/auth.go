package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// Auth проверяет заголовок Authorization в формате "Bearer <token>".
// Пустой token отключает проверку.
func Auth(next http.Handler, token string, publicPaths ...string) http.Handler {
	if token == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range publicPaths {
			if r.URL.Path == p {
				next.ServeHTTP(w, r)
				return
			}
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "authorization header not provided", http.StatusUnauthorized)
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
			return
		}

		provided := strings.TrimPrefix(header, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
