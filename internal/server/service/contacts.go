package service

import (
	"context"
	"strings"
	"time"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/config"
	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

// ContactsService реализует бизнес-логику работы с контактами.
//
// Ответственность:
//   - валидация входных данных (владелец, обязательные поля)
//   - нормализация параметров страницы (offset/limit)
//   - скоуп по владельцу: вся работа идёт только с контактами userID
//
// Формат телефона и email сервис не проверяет — это контракт клиента.
type ContactsService struct {
	contacts ContactsRepo

	defaultLimit int
	maxLimit     int
	queryTimeout time.Duration
}

// NewContactsService создаёт ContactsService с настройками из конфига.
func NewContactsService(contacts ContactsRepo, cfg *config.Config) *ContactsService {
	return &ContactsService{
		contacts:     contacts,
		defaultLimit: cfg.Contacts.DefaultLimit,
		maxLimit:     cfg.Contacts.MaxLimit,
		queryTimeout: cfg.DB.QueryTimeout,
	}
}

// Add создаёт новый контакт и возвращает его id.
//
// Валидация:
//   - userID > 0
//   - firstName и lastName непусты после trim
//
// Add сознательно НЕ идемпотентен: повторная отправка создаёт вторую запись,
// серверного ключа дедупликации нет.
//
// Ошибки:
//   - ErrInvalidInput, ErrInternal
func (s *ContactsService) Add(ctx context.Context, userID int64, firstName, lastName, phone, email string) (int64, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	if userID <= 0 || firstName == "" || lastName == "" {
		return 0, serr.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return s.contacts.Create(ctx, userID, firstName, lastName, phone, email)
}

// Search возвращает страницу контактов пользователя.
//
// Нормализация параметров:
//   - offset < 0 приводится к 0
//   - limit <= 0 приводится к default_limit, limit > max_limit — к max_limit
//
// Ошибки:
//   - ErrInvalidInput при userID <= 0, ErrInternal при ошибке базы
func (s *ContactsService) Search(ctx context.Context, userID int64, search string, offset, limit int) ([]models.Contact, error) {
	if userID <= 0 {
		return nil, serr.ErrInvalidInput
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return s.contacts.Search(ctx, userID, strings.TrimSpace(search), offset, limit)
}

// Update обновляет контакт по паре (contactID, userID).
//
// Пустые поля сохраняют прежние значения (merge выполняет репозиторий).
//
// Ошибки:
//   - ErrInvalidInput, ErrNotFound, ErrInternal
func (s *ContactsService) Update(ctx context.Context, contactID, userID int64, firstName, lastName, phone, email string) error {
	if contactID <= 0 || userID <= 0 {
		return serr.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return s.contacts.Update(ctx, contactID, userID,
		strings.TrimSpace(firstName),
		strings.TrimSpace(lastName),
		strings.TrimSpace(phone),
		strings.TrimSpace(email),
	)
}

// Delete удаляет контакт по паре (contactID, userID).
//
// Возвращает true при фактическом удалении; повторный вызов по той же паре
// даёт (false, ErrNotFound).
//
// Ошибки:
//   - ErrInvalidInput, ErrNotFound, ErrInternal
func (s *ContactsService) Delete(ctx context.Context, contactID, userID int64) (bool, error) {
	if contactID <= 0 || userID <= 0 {
		return false, serr.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return s.contacts.Delete(ctx, contactID, userID)
}
