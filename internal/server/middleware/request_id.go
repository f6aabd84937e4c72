// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// requestIDKey — ключ контекста, под которым хранится идентификатор запроса.
const requestIDKey ctxKey = "request_id"

// RequestIDHeader — заголовок, в котором идентификатор возвращается клиенту.
const RequestIDHeader = "X-Request-Id"

// RequestIDFromContext извлекает идентификатор запроса из контекста.
//
// Возвращает:
//   - идентификатор запроса
//   - false, если middleware не отработал
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	s, ok := v.(string)
	return s, ok
}

// RequestIDMiddleware возвращает HTTP middleware, присваивающее каждому
// запросу уникальный идентификатор (uuid v4).
//
// Middleware:
//   - берёт идентификатор из входящего заголовка X-Request-Id, если он есть;
//   - иначе генерирует новый uuid;
//   - сохраняет идентификатор в context.Context и в заголовок ответа.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
