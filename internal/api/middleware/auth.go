package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

// UserIDHeader заголовок с ID пользователя, который проставляет API gateway
const UserIDHeader = "X-User-ID"

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный X-User-ID"
)

type userIDKey struct{}

// Auth проверяет наличие X-User-ID и кладет ID пользователя в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext достает ID пользователя; 0 - запрос без аутентификации
func UserIDFromContext(ctx context.Context) int64 {
	userID, _ := ctx.Value(userIDKey{}).(int64)
	return userID
}
