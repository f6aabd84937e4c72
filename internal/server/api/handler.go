// Package api реализует HTTP-слой сервера контактов.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - обработку входящих запросов и формирование ответов (JSON-конверт);
//   - маппинг доменных ошибок (service/repository) в текст конверта;
//   - подключение middleware (request id, логирование).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/service"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc *service.Services
	Log *logger.HTTPLogger
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер.
func NewHandler(svc *service.Services, log *logger.HTTPLogger) *Handler {
	return &Handler{
		Svc: svc,
		Log: log,
	}
}

// Response — конверт ответа: {results, error}.
//
// Контракт клиента: доменные ошибки (валидация, not found, занятый логин)
// приходят со статусом 200 и непустым error; не-200 означает поломку
// транспорта, а не бизнес-ошибку.
type Response struct {
	Results any    `json:"results"`
	Error   string `json:"error"`
}

// WriteResult пишет успешный конверт: {results: <payload>, error: ""}.
func WriteResult(w http.ResponseWriter, results any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Response{
		Results: results,
		Error:   "",
	})
}

// WriteError пишет конверт с ошибкой.
//
// results передаётся явно: списочные методы кладут пустой срез,
// остальные — nil. Статус всегда 200, текст ошибки — в конверте.
func WriteError(w http.ResponseWriter, results any, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Response{
		Results: results,
		Error:   err.Error(),
	})
}
