package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/homelabster/internal/server/auth"
	"github.com/iudanet/homelabster/internal/validation"
	"github.com/iudanet/homelabster/pkg/api"
)

// AuthCookieName имя cookie с сессионным токеном
const AuthCookieName = "auth-token"

// AuthHandler обрабатывает запросы входа и выхода администратора
type AuthHandler struct {
	logger     *slog.Logger
	auth       *auth.Service
	production bool
}

// NewAuthHandler создает новый handler для авторизации.
// production включает Secure флаг на cookie.
func NewAuthHandler(logger *slog.Logger, authService *auth.Service, production bool) *AuthHandler {
	return &AuthHandler{
		logger:     logger,
		auth:       authService,
		production: production,
	}
}

// Login обрабатывает POST /api/auth/login
// Проверяет учетные данные и ставит HttpOnly cookie с токеном
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateLogin(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid login request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// Одинаковый ответ для неверного логина и неверного пароля,
	// чтобы нельзя было перебирать имена пользователей
	if !h.auth.ValidateCredentials(req.Username, req.Password) {
		h.logger.WarnContext(ctx, "login failed: invalid credentials")
		sendError(h.logger, w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := h.auth.SignToken(req.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to sign token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.InfoContext(ctx, "admin logged in", slog.String("username", req.Username))

	sendJSON(h.logger, w, api.LoginResponse{Success: true}, http.StatusOK)
}

// Logout обрабатывает POST /api/auth/logout
// Очищает cookie у клиента. Серверной таблицы сессий нет,
// сам токен остается валидным до истечения TTL.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.InfoContext(r.Context(), "admin logged out")

	sendJSON(h.logger, w, api.LoginResponse{Success: true}, http.StatusOK)
}
