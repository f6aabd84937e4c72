package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
)

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ana", "Lee", "ana@x.com", "hash").
		WillReturnRows(
			sqlmock.NewRows([]string{"id"}).AddRow(int64(7)),
		)

	got, err := repo.Create(context.Background(), "Ana", "Lee", "ana@x.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected id 7, got %v", got)
	}
}

// Логин уже занят
func TestUsersRepository_Create_LoginTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	pgErr := &pgconn.PgError{
		Code: "23505", // unique_violation
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), "Ana", "Lee", "ana@x.com", "hash")

	if err != serr.ErrLoginTaken {
		t.Fatalf("expected ErrLoginTaken, got %v", err)
	}
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "Ana", "Lee", "ana@x.com", "hash")

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// поиск по логину
func TestUsersRepository_GetByLogin_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, first_name, last_name, login, password_hash FROM users`).
		WithArgs("ana@x.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "first_name", "last_name", "login", "password_hash"}).
				AddRow(int64(7), "Ana", "Lee", "ana@x.com", "hash"),
		)

	u, err := repo.GetByLogin(context.Background(), "ana@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 7 || u.FirstName != "Ana" || u.PasswordHash != "hash" {
		t.Fatalf("unexpected result: %+v", u)
	}
}

// не найден по логину
func TestUsersRepository_GetByLogin_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, first_name, last_name, login, password_hash FROM users`).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByLogin(context.Background(), "ghost@x.com")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
