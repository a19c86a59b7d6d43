package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/baharkarakas/blog-backend/internal/api/httpx"
	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

// UserGetter resolves a token subject to a live user record.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (models.User, error)
}

type AuthMiddleware struct {
	tokens *auth.TokenManager
	users  UserGetter
}

func NewAuthMiddleware(tokens *auth.TokenManager, users UserGetter) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Gate is the only place a bearer token is resolved to a user record;
// handlers behind it trust the context identity without re-verifying.
//
// Terminal states: no token → 401, bad token → 400, unknown subject →
// 404, otherwise the user is attached and the chain continues.
func (m *AuthMiddleware) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			slog.Warn("auth: no token provided", "path", r.URL.Path)
			metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
			httpx.WriteMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		claims, err := m.tokens.Parse(token)
		if err != nil || claims.Type != auth.TokenTypeAccess {
			slog.Warn("auth: invalid token", "path", r.URL.Path)
			metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid token.")
			return
		}

		u, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				slog.Warn("auth: user not found for token subject", "user_id", claims.UserID)
				metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
				httpx.WriteMessage(w, http.StatusNotFound, "User not found")
				return
			}
			slog.Error("auth: user lookup failed", "err", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}
