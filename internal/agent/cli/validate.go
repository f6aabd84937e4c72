package cli

import (
	"errors"
	"regexp"
)

// Клиентская валидация полей контакта: невалидный запрос в сеть не уходит.
var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]+$`)
)

// validateContactFields проверяет опциональные поля контакта.
// Пустое поле валидно (для update оно означает "не менять").
func validateContactFields(phone, email string) error {
	if email != "" && !emailRe.MatchString(email) {
		return errors.New("invalid email: expected something like user@example.com")
	}
	if phone != "" && !phoneRe.MatchString(phone) {
		return errors.New("invalid phone: digits only (prefer 10 digits)")
	}
	return nil
}
