// HTTP-хендлеры регистрации и логина
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

// Register обрабатывает регистрацию пользователя.
//
// Конверт:
//   - успех: results = {userId, id, firstName, lastName}, error = "";
//   - занятый логин: results = null, error = "login already taken";
//   - невалидные поля / кривой JSON: results = null, error с текстом.
//
// @Summary      Register user
// @Description  Creates a new account and returns its identity payload.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.RegisterRequest true "Register request"
// @Success      200 {object} api.Response
// @Router       /api/Register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req smodels.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, nil, serr.ErrBadJSON)
		return
	}

	res, err := h.Svc.Auth.Register(r.Context(), req.FirstName, req.LastName, req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, nil, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrLoginTaken):
			WriteError(w, nil, serr.ErrLoginTaken)
		default:
			h.Log.Logger.Sugar().Errorw("register failed", "error", err)
			WriteError(w, nil, serr.ErrInternal)
		}
		return
	}

	WriteResult(w, res)
}

// Login обрабатывает вход пользователя.
//
// Неизвестный логин и неверный пароль дают один и тот же текст ошибки,
// чтобы не палить существование аккаунта.
//
// @Summary      Login user
// @Description  Verifies credentials and returns the identity payload.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.LoginRequest true "Login request"
// @Success      200 {object} api.Response
// @Router       /api/Login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req smodels.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, nil, serr.ErrBadJSON)
		return
	}

	res, err := h.Svc.Auth.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, nil, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, nil, serr.ErrInvalidCredentials)
		default:
			h.Log.Logger.Sugar().Errorw("login failed", "error", err)
			WriteError(w, nil, serr.ErrInternal)
		}
		return
	}

	WriteResult(w, res)
}
