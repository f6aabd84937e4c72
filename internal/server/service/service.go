// Package service содержит бизнес-логику приложения (contact manager).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/config"
	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/server/models"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users    UsersRepo
	Contacts ContactsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth     *AuthService
	Contacts *ContactsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля) и
// ContactsService (лимиты страниц, таймаут запросов к БД).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Users, cfg),
		Contacts: NewContactsService(repos.Contacts, cfg),
	}
}

// UsersRepo — репозиторий пользователей (нужен для register/login).
type UsersRepo interface {
	Create(ctx context.Context, firstName, lastName, login, passwordHash string) (int64, error)
	GetByLogin(ctx context.Context, login string) (smodels.User, error)
}

// ContactsRepo — репозиторий контактов (CRUD + постраничный поиск).
type ContactsRepo interface {
	Create(ctx context.Context, userID int64, firstName, lastName, phone, email string) (int64, error)
	Search(ctx context.Context, userID int64, search string, offset, limit int) ([]models.Contact, error)
	Update(ctx context.Context, id, userID int64, firstName, lastName, phone, email string) error
	Delete(ctx context.Context, id, userID int64) (bool, error)
}
