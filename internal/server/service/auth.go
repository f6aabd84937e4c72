package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/config"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

// AuthService реализует бизнес-логику регистрации и входа.
//
// Ответственность:
//   - регистрация пользователей (login уникален)
//   - аутентификация по паре login/password
//
// Пароль на API — непрозрачная строка; внутри хранится только argon2id-хэш.
type AuthService struct {
	users UsersRepo

	pass         crypto.Argon2Params
	queryTimeout time.Duration
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		queryTimeout: cfg.DB.QueryTimeout,
	}
}

// Register регистрирует нового пользователя.
//
// Валидация:
//   - все четыре поля обязательны и непусты после trim
//
// Формат логина сервер не навязывает (email-проверка — дело клиента).
//
// Возвращает:
//   - данные созданного пользователя
//   - ErrInvalidInput при пустых полях, ErrLoginTaken если логин уже занят
func (s *AuthService) Register(ctx context.Context, firstName, lastName, login, password string) (models.AuthResult, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	login = strings.TrimSpace(login)

	if firstName == "" || lastName == "" || login == "" || strings.TrimSpace(password) == "" {
		return models.AuthResult{}, serr.ErrInvalidInput
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return models.AuthResult{}, serr.ErrInternal
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	id, err := s.users.Create(ctx, firstName, lastName, login, hash)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{
		UserID:    id,
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// Login аутентифицирует пользователя.
//
// Поведение:
//   - не раскрывает факт существования логина
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, login, password string) (models.AuthResult, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return models.AuthResult{}, serr.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	// получаем юзера по логину
	u, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		// не палим существование логина
		if errors.Is(err, serr.ErrNotFound) {
			return models.AuthResult{}, serr.ErrInvalidCredentials
		}
		return models.AuthResult{}, err
	}

	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, u.PasswordHash)
	if err != nil {
		return models.AuthResult{}, serr.ErrInternal
	}
	if !ok {
		return models.AuthResult{}, serr.ErrInvalidCredentials
	}

	return models.AuthResult{
		UserID:    u.ID,
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}, nil
}
