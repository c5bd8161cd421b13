package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/homelabster/internal/server/auth"
	"github.com/iudanet/homelabster/internal/server/handlers"
)

// contextKey тип ключей контекста этого пакета
type contextKey string

// UsernameKey ключ контекста с логином аутентифицированного администратора
const UsernameKey contextKey = "username"

// AuthMiddleware создает middleware для проверки сессионного токена.
// Токен берется из HttpOnly cookie, которую ставит login handler.
// Запросы без валидного токена получают 401, различие между
// отсутствующим, просроченным и подделанным токеном наружу не отдается.
func AuthMiddleware(logger *slog.Logger, authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(handlers.AuthCookieName)
			if err != nil {
				logger.Warn("missing auth cookie", "path", r.URL.Path)
				unauthorized(w)
				return
			}

			claims := authService.VerifyToken(cookie.Value)
			if claims == nil {
				logger.Warn("invalid or expired token", "path", r.URL.Path)
				unauthorized(w)
				return
			}

			// Кладем логин из токена в контекст запроса
			ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)

			logger.Debug("admin authenticated", "username", claims.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized отправляет единый 401 ответ
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
}
