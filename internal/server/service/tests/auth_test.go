package tests

import (
	"context"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/config"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/crypto"
	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/server/models"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/service"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testArgon2() crypto.Argon2Params {
	// слабые параметры, чтобы тесты не тормозили
	return crypto.Argon2Params{Time: 1, MemoryKiB: 1024, Threads: 1, KeyLen: 32, SaltLen: 16}
}

// helper: создаёт AuthService с моками
func newTestAuthService(t *testing.T) (*service.AuthService, *mocks.MockUsersRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	p := testArgon2()
	cfg := &config.Config{}
	cfg.Password.Argon2.Time = p.Time
	cfg.Password.Argon2.MemoryKiB = p.MemoryKiB
	cfg.Password.Argon2.Threads = p.Threads
	cfg.Password.Argon2.KeyLen = p.KeyLen
	cfg.Password.Argon2.SaltLen = p.SaltLen
	cfg.DB.QueryTimeout = 5 * time.Second

	repo := mocks.NewMockUsersRepo(ctrl)
	svc := service.NewAuthService(repo, cfg)
	return svc, repo
}

// Успешная регистрация
func TestAuthService_Register_OK(t *testing.T) {
	t.Parallel()

	svc, repo := newTestAuthService(t)

	repo.EXPECT().
		Create(gomock.Any(), "Ana", "Lee", "ana@x.com", gomock.Any()).
		Return(int64(7), nil)

	res, err := svc.Register(context.Background(), " Ana ", " Lee ", " ana@x.com ", "StrongPass123")

	require.NoError(t, err)
	require.Equal(t, int64(7), res.UserID)
	require.Equal(t, int64(7), res.ID)
	require.Equal(t, "Ana", res.FirstName)
	require.Equal(t, "Lee", res.LastName)
}

// Пустые обязательные поля
func TestAuthService_Register_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t)

	cases := [][4]string{
		{"", "Lee", "ana@x.com", "pass"},
		{"Ana", " ", "ana@x.com", "pass"},
		{"Ana", "Lee", "", "pass"},
		{"Ana", "Lee", "ana@x.com", "  "},
	}
	for _, c := range cases {
		_, err := svc.Register(context.Background(), c[0], c[1], c[2], c[3])
		require.ErrorIs(t, err, serr.ErrInvalidInput)
	}
}

// Логин занят
func TestAuthService_Register_LoginTaken(t *testing.T) {
	t.Parallel()

	svc, repo := newTestAuthService(t)

	repo.EXPECT().
		Create(gomock.Any(), "Ana", "Lee", "ana@x.com", gomock.Any()).
		Return(int64(0), serr.ErrLoginTaken)

	_, err := svc.Register(context.Background(), "Ana", "Lee", "ana@x.com", "pass")

	require.ErrorIs(t, err, serr.ErrLoginTaken)
}

// Успешный вход
func TestAuthService_Login_OK(t *testing.T) {
	t.Parallel()

	svc, repo := newTestAuthService(t)

	hash, err := crypto.HashPassword("StrongPass123", testArgon2())
	require.NoError(t, err)

	repo.EXPECT().
		GetByLogin(gomock.Any(), "ana@x.com").
		Return(smodels.User{ID: 7, FirstName: "Ana", LastName: "Lee", Login: "ana@x.com", PasswordHash: hash}, nil)

	res, err := svc.Login(context.Background(), "ana@x.com", "StrongPass123")

	require.NoError(t, err)
	require.Equal(t, int64(7), res.UserID)
	require.Equal(t, "Ana", res.FirstName)
}

// Неверный пароль
func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, repo := newTestAuthService(t)

	hash, err := crypto.HashPassword("StrongPass123", testArgon2())
	require.NoError(t, err)

	repo.EXPECT().
		GetByLogin(gomock.Any(), "ana@x.com").
		Return(smodels.User{ID: 7, PasswordHash: hash}, nil)

	_, err = svc.Login(context.Background(), "ana@x.com", "wrong")

	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

// Несуществующий логин не палится: та же ошибка, что и неверный пароль
func TestAuthService_Login_UnknownLogin(t *testing.T) {
	t.Parallel()

	svc, repo := newTestAuthService(t)

	repo.EXPECT().
		GetByLogin(gomock.Any(), "ghost@x.com").
		Return(smodels.User{}, serr.ErrNotFound)

	_, err := svc.Login(context.Background(), "ghost@x.com", "whatever")

	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}
