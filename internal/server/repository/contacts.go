package repository

import (
	"context"
	"database/sql"

	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

// ContactsRepository реализует доступ к хранилищу контактов (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
//
// Все запросы скоупятся по user_id: чужой контакт для репозитория не существует.
// Конкурентные Update/Delete по одной паре (id, user_id) сериализует сама база
// на уровне строки, прикладных блокировок нет.
type ContactsRepository struct {
	db *sql.DB
}

// NewContactsRepository создаёт новый экземпляр ContactsRepository.
func NewContactsRepository(db *sql.DB) *ContactsRepository {
	return &ContactsRepository{db: db}
}

// Create сохраняет новый контакт пользователя и возвращает его id.
//
// Временные метки created_at/updated_at проставляет база.
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *ContactsRepository) Create(ctx context.Context, userID int64, firstName, lastName, phone, email string) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO contacts (user_id, first_name, last_name, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		userID, firstName, lastName, phone, email,
	).Scan(&id)

	if err != nil {
		return 0, serr.ErrInternal
	}

	return id, nil
}

// Search возвращает страницу контактов пользователя.
//
// При непустом search фильтрует по подстроке (без учёта регистра) в имени,
// фамилии, телефоне или email. Сортировка всегда по имени по возрастанию,
// размер результата не превышает limit.
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *ContactsRepository) Search(ctx context.Context, userID int64, search string, offset, limit int) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, phone, email
		FROM contacts
		WHERE user_id = $1
		  AND ($2 = ''
		       OR first_name ILIKE '%' || $2 || '%'
		       OR last_name  ILIKE '%' || $2 || '%'
		       OR phone      ILIKE '%' || $2 || '%'
		       OR email      ILIKE '%' || $2 || '%')
		ORDER BY first_name ASC
		OFFSET $3 LIMIT $4
	`,
		userID, search, offset, limit,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, limit)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email); err != nil {
			return nil, serr.ErrInternal
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return contacts, nil
}

// Update обновляет контакт по паре (id, user_id).
//
// Merge-семантика: пустая строка в поле означает "оставить прежнее значение"
// (COALESCE/NULLIF на стороне базы). updated_at обновляется всегда.
//
// Ошибки:
//   - ErrNotFound — контакт отсутствует или принадлежит другому пользователю
//   - ErrInternal — ошибка базы данных
func (r *ContactsRepository) Update(ctx context.Context, id, userID int64, firstName, lastName, phone, email string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE contacts SET
			first_name = COALESCE(NULLIF($3, ''), first_name),
			last_name  = COALESCE(NULLIF($4, ''), last_name),
			phone      = COALESCE(NULLIF($5, ''), phone),
			email      = COALESCE(NULLIF($6, ''), email),
			updated_at = now()
		WHERE id = $1 AND user_id = $2
	`,
		id, userID, firstName, lastName, phone, email,
	)
	if err != nil {
		return serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if affected == 0 {
		// чужой или несуществующий контакт — одинаково "not found"
		return serr.ErrNotFound
	}

	return nil
}

// Delete удаляет контакт по паре (id, user_id).
//
// Возвращает true, если строка действительно была удалена. Повторное удаление
// даёт (false, ErrNotFound) — идемпотентный no-op.
func (r *ContactsRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM contacts WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, serr.ErrInternal
	}
	if affected == 0 {
		return false, serr.ErrNotFound
	}

	return true, nil
}
