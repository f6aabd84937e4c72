package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

// SearchContacts возвращает страницу контактов пользователя.
//
// Поиск регистронезависимый по имени, фамилии, телефону и email;
// пустой search отдаёт все контакты. Страница задаётся offset/limit.
//
// При любой ошибке results — пустой массив, не null: клиентский код
// итерируется по results без дополнительных проверок.
//
// @Summary      Search contacts
// @Description  Returns a page of the user's contacts, optionally filtered
// @Description  by a case-insensitive substring over name, phone and email.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request body models.SearchContactsRequest true "Search request"
// @Success      200 {object} api.Response
// @Router       /api/SearchContacts [post]
func (h *Handler) SearchContacts(w http.ResponseWriter, r *http.Request) {
	emptyList := []smodels.Contact{}

	var req smodels.SearchContactsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, emptyList, serr.ErrBadJSON)
		return
	}

	contacts, err := h.Svc.Contacts.Search(r.Context(), req.UserID, req.Search, req.Offset, req.Limit)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, emptyList, serr.ErrInvalidInput)
		default:
			h.Log.Logger.Sugar().Errorw("search contacts failed", "error", err, "user_id", req.UserID)
			WriteError(w, emptyList, serr.ErrInternal)
		}
		return
	}

	WriteResult(w, contacts)
}

// AddContact создаёт контакт.
//
// Дедупликации нет: повторный AddContact с теми же полями создаёт
// ещё одну запись. Обязательны имя и фамилия, телефон и email опциональны.
//
// @Summary      Add contact
// @Description  Creates a new contact row for the user. Not idempotent.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request body models.AddContactRequest true "Add request"
// @Success      200 {object} api.Response
// @Router       /api/AddContact [post]
func (h *Handler) AddContact(w http.ResponseWriter, r *http.Request) {
	var req smodels.AddContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, nil, serr.ErrBadJSON)
		return
	}

	id, err := h.Svc.Contacts.Add(r.Context(), req.UserID, req.FirstName, req.LastName, req.Phone, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, nil, serr.ErrInvalidInput)
		default:
			h.Log.Logger.Sugar().Errorw("add contact failed", "error", err, "user_id", req.UserID)
			WriteError(w, nil, serr.ErrInternal)
		}
		return
	}

	WriteResult(w, smodels.AddContactResult{ContactID: id})
}

// UpdateContact обновляет контакт пользователя (merge-семантика:
// пустые поля запроса не трогают значения в базе).
//
// Чужой или несуществующий contactId → error = "not found".
//
// @Summary      Update contact
// @Description  Merges non-empty request fields into the contact.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request body models.UpdateContactRequest true "Update request"
// @Success      200 {object} api.Response
// @Router       /api/UpdateContact [post]
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var req smodels.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, nil, serr.ErrBadJSON)
		return
	}

	err := h.Svc.Contacts.Update(r.Context(), req.ContactID, req.UserID, req.FirstName, req.LastName, req.Phone, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, nil, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, nil, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw(
				"update contact failed",
				"error", err,
				"user_id", req.UserID,
				"contact_id", req.ContactID,
			)
			WriteError(w, nil, serr.ErrInternal)
		}
		return
	}

	WriteResult(w, smodels.UpdateContactResult{Updated: true})
}

// DeleteContact удаляет контакт пользователя.
//
// Повторное удаление — no-op: error = "not found", сервер не падает.
//
// @Summary      Delete contact
// @Description  Deletes the contact if it belongs to the user.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request body models.DeleteContactRequest true "Delete request"
// @Success      200 {object} api.Response
// @Router       /api/DeleteContact [post]
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	var req smodels.DeleteContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, nil, serr.ErrBadJSON)
		return
	}

	deleted, err := h.Svc.Contacts.Delete(r.Context(), req.ContactID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, nil, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, nil, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw(
				"delete contact failed",
				"error", err,
				"user_id", req.UserID,
				"contact_id", req.ContactID,
			)
			WriteError(w, nil, serr.ErrInternal)
		}
		return
	}

	WriteResult(w, smodels.DeleteContactResult{Deleted: deleted})
}
