package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном администратора
const AdminTokenHeader = "X-Admin-Token"

const (
	msgMissingToken = "отсутствует токен администратора"
	msgInvalidToken = "неверный токен администратора"
)

// AdminAuth пропускает только запросы с токеном администратора из конфигурации
// Пустой токен в конфигурации закрывает все admin маршруты
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if got == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondForbidden(w, msgInvalidToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
