// Методы клиента для CRUD и постраничного поиска контактов.
package api

import (
	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

// SearchContacts запрашивает страницу контактов пользователя.
//
// search может быть пустым (без фильтра). Сервер сам нормализует
// offset/limit, клиент шлёт как есть. Страница возвращается срезом;
// пустая страница — пустой срез, не nil.
func (c *Client) SearchContacts(userID int64, search string, offset, limit int) ([]smodels.Contact, error) {
	page := []smodels.Contact{}
	err := c.PostJSON("/api/SearchContacts", smodels.SearchContactsRequest{
		UserID: userID,
		Search: search,
		Offset: offset,
		Limit:  limit,
	}, &page)
	return page, err
}

// AddContact создаёт контакт и возвращает его id.
func (c *Client) AddContact(userID int64, firstName, lastName, phone, email string) (int64, error) {
	var res smodels.AddContactResult
	err := c.PostJSON("/api/AddContact", smodels.AddContactRequest{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Email:     email,
	}, &res)
	return res.ContactID, err
}

// UpdateContact обновляет контакт (merge-семантика: пустые поля
// сохраняют прежнее значение). Чужой или несуществующий контакт —
// ошибка "not found".
func (c *Client) UpdateContact(contactID, userID int64, firstName, lastName, phone, email string) error {
	var res smodels.UpdateContactResult
	return c.PostJSON("/api/UpdateContact", smodels.UpdateContactRequest{
		ContactID: contactID,
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Email:     email,
	}, &res)
}

// DeleteContact удаляет контакт. Повторное удаление возвращает
// ошибку "not found" — вызывающий код волен её игнорировать.
func (c *Client) DeleteContact(contactID, userID int64) error {
	var res smodels.DeleteContactResult
	return c.PostJSON("/api/DeleteContact", smodels.DeleteContactRequest{
		ContactID: contactID,
		UserID:    userID,
	}, &res)
}
