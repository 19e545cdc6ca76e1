package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/gophsync/internal/models"
	"github.com/iudanet/gophsync/internal/server/jwt"
	"github.com/iudanet/gophsync/internal/server/storage"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// SubjectKey ключ для хранения subject токена в контексте
	SubjectKey contextKey = "subject"
	// TokenIDKey ключ для хранения jti токена в контексте
	TokenIDKey contextKey = "token_id"
)

// Subject извлекает subject аутентифицированного клиента из контекста запроса
func Subject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok
}

// TokenValidator проверяет подпись и срок токена
type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

// TokenRegistry реестр выданных токенов для проверки отзыва
type TokenRegistry interface {
	GetToken(ctx context.Context, id string) (*models.IssuedToken, error)
}

// AuthMiddleware создает middleware для проверки JWT токена.
// Токен должен быть выдан этим сервером и не отозван.
func AuthMiddleware(logger *slog.Logger, validator TokenValidator, registry TokenRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header", "path", r.URL.Path)
				unauthorized(w, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.Warn("Invalid Authorization header format")
				unauthorized(w, "invalid token format")
				return
			}

			claims, err := validator.Validate(parts[1])
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				unauthorized(w, "invalid token")
				return
			}

			issued, err := registry.GetToken(r.Context(), claims.ID)
			switch {
			case errors.Is(err, storage.ErrTokenNotFound):
				logger.Warn("Unknown token", "token_id", claims.ID, "subject", claims.Subject)
				unauthorized(w, "invalid token")
				return
			case err != nil:
				logger.Error("Failed to check token", "token_id", claims.ID, "error", err)
				writeError(w, "token registry unavailable", http.StatusServiceUnavailable)
				return
			case !issued.IsActive(time.Now()):
				logger.Warn("Revoked token used", "token_id", claims.ID, "subject", claims.Subject)
				unauthorized(w, "token revoked")
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
			ctx = context.WithValue(ctx, TokenIDKey, claims.ID)

			logger.Debug("Client authenticated", "subject", claims.Subject, "token_id", claims.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="gophsync"`)
	writeError(w, "unauthorized: "+message, http.StatusUnauthorized)
}
