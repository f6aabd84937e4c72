// Package models содержит общие модели протокола между сервером и клиентом.
//
// Все эндпоинты отвечают конвертом {results, error}: непустой error означает
// доменную ошибку, при этом HTTP-статус остаётся 200. Раскладка полей контакта
// (ID, FirstName, ...) сохранена из исходного контракта API — клиенты уже
// завязаны на такой регистр имён.
package models

import "encoding/json"

// Envelope — стандартный конверт ответа любого эндпоинта.
//
// Results: полезная нагрузка (объект или массив), null при ошибке.
// Error: "" при успехе, текст доменной ошибки иначе.
type Envelope struct {
	Results json.RawMessage `json:"results"`
	Error   string          `json:"error"`
}

// Contact — контакт в том виде, в котором он ходит по сети.
//
// ID может отсутствовать в некоторых формах ответа (тогда будет 0) —
// клиент обязан это переживать и строить fallback-ключ дедупликации.
type Contact struct {
	ID        int64  `json:"ID,omitempty"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Phone     string `json:"Phone"`
	Email     string `json:"Email"`
}

// SearchContactsRequest — запрос страницы контактов.
//
// Search может быть пустым (без фильтра). Offset/Limit задают страницу;
// клиент понимает "страниц больше нет" когда пришло строго меньше Limit.
type SearchContactsRequest struct {
	UserID int64  `json:"userId"`
	Search string `json:"search"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

// AddContactRequest — запрос создания контакта.
type AddContactRequest struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// AddContactResult — полезная нагрузка успешного создания.
type AddContactResult struct {
	ContactID int64 `json:"contactId"`
}

// UpdateContactRequest — запрос обновления контакта.
//
// Пустые поля сохраняют прежнее значение (merge-семантика на сервере).
type UpdateContactRequest struct {
	ContactID int64  `json:"contactId"`
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// UpdateContactResult — полезная нагрузка успешного обновления.
type UpdateContactResult struct {
	Updated bool `json:"updated"`
}

// DeleteContactRequest — запрос удаления контакта.
type DeleteContactRequest struct {
	ContactID int64 `json:"contactId"`
	UserID    int64 `json:"userId"`
}

// DeleteContactResult — полезная нагрузка ответа удаления.
//
// Deleted=false при повторном удалении (идемпотентный no-op, error="not found").
type DeleteContactResult struct {
	Deleted bool `json:"deleted"`
}

// RegisterRequest — запрос регистрации пользователя.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Login     string `json:"login"`
	Password  string `json:"password"`
}

// LoginRequest — запрос входа пользователя.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResult — полезная нагрузка Register и Login.
//
// ID дублирует UserID: старые клиенты читали res.id, новые res.userId.
type AuthResult struct {
	UserID    int64  `json:"userId"`
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
