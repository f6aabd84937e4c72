package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgconn"

	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

func (r *UsersRepository) Create(ctx context.Context, firstName, lastName, login, passwordHash string) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (first_name, last_name, login, password_hash)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id`,
		firstName, lastName, login, passwordHash,
	).Scan(&id)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return 0, serr.ErrLoginTaken
			}
		}
		return 0, serr.ErrInternal
	}

	return id, nil
}

func (r *UsersRepository) GetByLogin(ctx context.Context, login string) (smodels.User, error) {
	var u smodels.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, login, password_hash FROM users WHERE login=$1`,
		login,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Login, &u.PasswordHash)

	if err != nil {
		if err == sql.ErrNoRows {
			return smodels.User{}, serr.ErrNotFound
		}
		return smodels.User{}, serr.ErrInternal
	}

	return u, nil
}
