// Package http реализует маршрутизацию HTTP-слоя сервера контактов.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - сквозной request id и логирование выполнения HTTP-запросов;
package http

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/api"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware request id и логирования для всех запросов;
//   - swagger UI;
//   - RPC-style POST-эндпоинты под префиксом /api.
//
// ListContacts — исторический алиас SearchContacts: старые клиенты
// дёргали его для первой страницы без фильтра, тело то же самое.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// request id до логгера, чтобы он попал в записи
	r.Use(middleware.RequestIDMiddleware())
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/Register", h.Register)
		r.Post("/Login", h.Login)
		r.Post("/SearchContacts", h.SearchContacts)
		r.Post("/ListContacts", h.SearchContacts) // алиас, то же тело
		r.Post("/AddContact", h.AddContact)
		r.Post("/UpdateContact", h.UpdateContact)
		r.Post("/DeleteContact", h.DeleteContact)
	})

	return r
}
