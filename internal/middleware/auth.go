// Package middleware provides HTTP middleware for authentication, request
// identification, and rate limiting.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sharegov/internal/domain"
)

// Auth validates the Bearer token and stores the resulting principal in the
// request context. The "sub" claim names the principal; an optional "admin"
// boolean claim marks a platform-admin. Requests without a valid token get
// 401.
func Auth(jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				tokenStr := strings.TrimPrefix(auth, "Bearer ")
				token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
					return jwtSecret, nil
				}, jwt.WithValidMethods([]string{"HS256"}))

				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if sub, ok := claims["sub"].(string); ok && sub != "" {
							principal := domain.ContextPrincipal{Name: sub}
							if admin, ok := claims["admin"].(bool); ok {
								principal.IsAdmin = admin
							}
							ctx := domain.WithPrincipal(r.Context(), principal)
							next.ServeHTTP(w, r.WithContext(ctx))
							return
						}
					}
				}
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"code":    401,
				"message": "unauthorized: provide a valid Bearer token",
			})
		})
	}
}

// SignToken mints an HS256 token for the given principal. The server only
// verifies tokens; minting is for the CLI and tests.
func SignToken(jwtSecret []byte, subject string, admin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"admin": admin,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}
