// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и превращаются в текст поля error конверта {results, error} в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Ресурс не найден (контакт отсутствует или принадлежит другому пользователю)
	ErrNotFound = errors.New("not found")
	// Логин уже занят другим пользователем
	ErrLoginTaken = errors.New("login already taken")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// только для клиента (contactcli)
var (
	// Локальная сессия отсутствует или истекла
	ErrNoSession = errors.New("no active session, run: contactcli login")
	// Контакт не найден в локальной ленте
	ErrContactNotFound = errors.New("contact not found")
)
