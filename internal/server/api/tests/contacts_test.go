package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

func TestHandler_SearchContacts_Success(t *testing.T) {
	t.Parallel()

	h, _, contacts := NewTestHandler(t)

	page := []smodels.Contact{
		{ID: 1, FirstName: "Anna", LastName: "Ivanova", Phone: "+7 900 111-22-33", Email: "anna@example.com"},
		{ID: 2, FirstName: "Boris", LastName: "Sidorov", Phone: "", Email: ""},
	}
	contacts.EXPECT().
		Search(gomock.Any(), int64(7), "an", 0, 20).
		Return(page, nil)

	body, _ := json.Marshal(smodels.SearchContactsRequest{UserID: 7, Search: "an", Offset: 0, Limit: 20})
	req := httptest.NewRequest(http.MethodPost, "/api/SearchContacts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.SearchContacts(rec, req)

	env := decodeEnvelope(t, rec)
	if env.Error != "" {
		t.Fatalf("expected empty error, got %q", env.Error)
	}

	var got []smodels.Contact
	if err := json.Unmarshal(env.Results, &got); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if len(got) != 2 || got[0].FirstName != "Anna" {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestHandler_SearchContacts_BadJSON_EmptyList(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/SearchContacts", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	h.SearchContacts(rec, req)

	// списочный метод обязан отдать results: [] даже при ошибке
	env := decodeEnvelope(t, rec)
	if env.Error != serr.ErrBadJSON.Error() {
		t.Fatalf("expected error %q, got %q", serr.ErrBadJSON.Error(), env.Error)
	}
	if string(env.Results) != "[]" {
		t.Fatalf("expected results [], got %s", env.Results)
	}
}

func TestHandler_SearchContacts_InternalError_EmptyList(t *testing.T) {
	t.Parallel()

	h, _, contacts := NewTestHandler(t)

	contacts.EXPECT().
		Search(gomock.Any(), int64(7), "", 0, 20).
		Return(nil, serr.ErrInternal)

	body, _ := json.Marshal(smodels.SearchContactsRequest{UserID: 7})
	req := httptest.NewRequest(http.MethodPost, "/api/SearchContacts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.SearchContacts(rec, req)

	env := decodeEnvelope(t, rec)
	if env.Error != serr.ErrInternal.Error() {
		t.Fatalf("expected error %q, got %q", serr.ErrInternal.Error(), env.Error)
	}
	if string(env.Results) != "[]" {
		t.Fatalf("expected results [], got %s", env.Results)
	}
}

func TestHandler_AddContact_Success(t *testing.T) {
	t.Parallel()

	h, _, contacts := NewTestHandler(t)

	contacts.EXPECT().
		Create(gomock.Any(), int64(7), "Anna", "Ivanova", "+7 900 111-22-33", "anna@example.com").
		Return(int64(42), nil)

	body, _ := json.Marshal(smodels.AddContactRequest{
		UserID:    7,
		FirstName: "Anna",
		LastName:  "Ivanova",
		Phone:     "+7 900 111-22-33",
		Email:     "anna@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/AddContact", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.AddContact(rec, req)

	env := decodeEnvelope(t, rec)
	if env.Error != "" {
		t.Fatalf("expected empty error, got %q", env.Error)
	}

	var res smodels.AddContactResult
	if err := json.Unmarshal(env.Results, &res); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if res.ContactID != 42 {
		t.Fatalf("expected contactId 42, got %d", res.ContactID)
	}
}

func TestHandler_AddContact_InvalidInput(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(smodels.AddContactRequest{UserID: 7, FirstName: "", LastName: "Ivanova"})
	req := httptest.NewRequest(http.MethodPost, "/api/AddContact", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.AddContact(rec, req)

	env := decodeEnvelope(t, rec)
	if env.Error != serr.ErrInvalidInput.Error() {
		t.Fatalf("expected error %q, got %q", serr.ErrInvalidInput.Error(), env.Error)
	}
}

func TestHandler_UpdateContact_Success(t *testing.T) {
	t.Parallel()

	h, _, contacts := NewTestHandler(t)

	contacts.EXPECT().
		Update(gomock.Any(), int64(42), int64(7), "", "", "+7 900 000-00-00", "").
		Return(nil)

	body, _ := json.Marshal(smodels.UpdateContactRequest{
		ContactID: 42,
		UserID:    7,
		Phone:     "+7 900 000-00-00",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/UpdateContact", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.UpdateContact(rec, req)

	env := decodeEnvelope(t, rec)
	if env.Error != "" {
		t.Fatalf("expected empty error, got %q", env.Error)
	}

	var res smodels.UpdateContactResult
	if err := json.Unmarshal(env.Results, &res); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if !res.Updated {
		t.Fatal("expected updated=true")
	}
}

func TestHandler_UpdateContact_NotFound(t *testing.T) {
	t.Parallel()

	h, _, contacts := NewTestHandler(t)

	contacts.EXPECT().
		Update(gomock.Any(), int64(42), int64(8), "", "", "", "x@example.com").
		Return(serr.ErrNotFound)

	body, _ := json.Marshal(smodels.UpdateContactRequest{ContactID: 42, UserID: 8, Email: "x@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/UpdateContact", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.UpdateContact(rec, req)

	// чужой контакт неотличим от несуществующего
	env := decodeEnvelope(t, rec)
	if env.Error != serr.ErrNotFound.Error() {
		t.Fatalf("expected error %q, got %q", serr.ErrNotFound.Error(), env.Error)
	}
}

func TestHandler_DeleteContact_Success(t *testing.T) {
	t.Parallel()

	h, _, contacts := NewTestHandler(t)

	contacts.EXPECT().
		Delete(gomock.Any(), int64(42), int64(7)).
		Return(true, nil)

	body, _ := json.Marshal(smodels.DeleteContactRequest{ContactID: 42, UserID: 7})
	req := httptest.NewRequest(http.MethodPost, "/api/DeleteContact", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.DeleteContact(rec, req)

	env := decodeEnvelope(t, rec)
	if env.Error != "" {
		t.Fatalf("expected empty error, got %q", env.Error)
	}

	var res smodels.DeleteContactResult
	if err := json.Unmarshal(env.Results, &res); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if !res.Deleted {
		t.Fatal("expected deleted=true")
	}
}

func TestHandler_DeleteContact_Repeat_NotFound(t *testing.T) {
	t.Parallel()

	h, _, contacts := NewTestHandler(t)

	contacts.EXPECT().
		Delete(gomock.Any(), int64(42), int64(7)).
		Return(false, serr.ErrNotFound)

	body, _ := json.Marshal(smodels.DeleteContactRequest{ContactID: 42, UserID: 7})
	req := httptest.NewRequest(http.MethodPost, "/api/DeleteContact", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.DeleteContact(rec, req)

	env := decodeEnvelope(t, rec)
	if env.Error != serr.ErrNotFound.Error() {
		t.Fatalf("expected error %q, got %q", serr.ErrNotFound.Error(), env.Error)
	}
}
