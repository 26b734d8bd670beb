package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/elitecuts/booking-service/internal/api/handlers"
	"github.com/elitecuts/booking-service/internal/service/auth"
)

type contextKey string

// UsernameKey ключ контекста с именем аутентифицированного администратора
const UsernameKey contextKey = "admin_username"

// TokenValidator интерфейс проверки JWT токена
type TokenValidator interface {
	Validate(tokenString string) (*auth.Claims, error)
}

// Auth проверяет заголовок Authorization: Bearer <token> и кладёт имя
// администратора в контекст запроса. Защищает все /admin маршруты.
func Auth(validator TokenValidator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, "authorization header is required")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				handlers.RespondUnauthorized(w, "authorization header must be: Bearer <token>")
				return
			}

			claims, err := validator.Validate(parts[1])
			if err != nil {
				handlers.RespondUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
