// Package session содержит функции для работы с локальной сессией CLI-клиента.
//
// Сессия хранит identity вошедшего пользователя и размещается
// в домашней директории пользователя в файле:
//
//	~/.contactmgr/session.json
//
// Сессия живёт TTL (20 минут) с момента логина; по истечении клиент считает,
// что пользователь разлогинен, и требует повторный вход.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
)

// TTL — время жизни локальной сессии с момента логина.
const TTL = 20 * time.Minute

// Session содержит identity вошедшего пользователя.
//
// UserID подставляется во все запросы к серверу; FirstName/LastName
// нужны только для приветствия в CLI.
type Session struct {
	UserID    int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New создаёт сессию с истечением через TTL от текущего момента.
func New(userID int64, firstName, lastName string) *Session {
	return &Session{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		ExpiresAt: time.Now().Add(TTL),
	}
}

// Expired сообщает, истекла ли сессия.
func (s *Session) Expired() bool {
	return !time.Now().Before(s.ExpiresAt)
}

// DefaultPath возвращает путь к файлу сессии в домашней директории пользователя.
//
// Формат пути:
//
//	<home>/.contactmgr/session.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".contactmgr", "session.json"), nil
}

// Load загружает сессию из указанного файла.
//
// Если файла нет или сессия истекла, возвращает ErrNoSession.
// Если файл существует, но содержит некорректный JSON, возвращает ошибку.
func Load(path string) (*Session, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.ErrNoSession
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	if s.Expired() {
		return nil, serr.ErrNoSession
	}
	return &s, nil
}

// Save сохраняет сессию в указанный файл в JSON формате.
//
// При необходимости создаёт директорию назначения с правами 0700.
// Файл сессии записывается с правами 0600.
func Save(path string, s *Session) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Clear удаляет файл сессии (logout). Отсутствие файла не считается ошибкой.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
