// internal/auth/middleware.go
// Request authentication. Downstream handlers trust the userID this
// middleware puts into the request context.

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/M-U-C-K-A/matcha/internal/common/utils"
)

// Middleware provides authentication middleware
type Middleware struct {
	service Service
}

// NewMiddleware creates a new auth middleware
func NewMiddleware(service Service) *Middleware {
	return &Middleware{service: service}
}

// Authenticate verifies the JWT and adds user information to the
// request context
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.extractToken(r)
		if token == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
			return
		}

		claims, err := m.service.ValidateToken(r.Context(), token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		if claims.Type != "access" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token type")
			return
		}

		ctx := context.WithValue(r.Context(), "userID", claims.UserID)
		ctx = context.WithValue(ctx, "username", claims.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken pulls the bearer token from the Authorization header
func (m *Middleware) extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// GetUserIDFromContext extracts user ID from request context
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value("userID").(int64)
	return userID, ok
}

// GetUsernameFromContext extracts username from request context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value("username").(string)
	return username, ok
}
