// Серверная модель пользователя
package models

import "time"

type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
