package tests

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/session"
	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
)

func TestDefaultPath_ReturnsPathInHomeDir(t *testing.T) {
	p, err := session.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath returned error: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir returned error: %v", err)
	}

	want := filepath.Join(home, ".contactmgr", "session.json")
	if p != want {
		t.Fatalf("expected %q, got %q", want, p)
	}
}

func TestLoad_FileNotExists_ReturnsErrNoSession(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "no-such-file.json")

	_, err := session.Load(p)
	if !errors.Is(err, serr.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "a", "session.json") // вложенная директория

	want := session.New(7, "Ivan", "Petrov")

	if err := session.Save(p, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := session.Load(p)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got.UserID != 7 || got.FirstName != "Ivan" || got.LastName != "Petrov" {
		t.Fatalf("unexpected session: %+v", *got)
	}

	// проверим права файла только на linux, на винде он гарантирует эти права.
	if runtime.GOOS != "windows" {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Stat returned error: %v", err)
		}
		perm := st.Mode().Perm()

		// ожидаем, что группа/остальные не имеют доступа
		if perm&0o077 != 0 {
			t.Fatalf("expected no group/other permissions, got %o", perm)
		}
	}
}

func TestLoad_Expired_ReturnsErrNoSession(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "session.json")

	s := session.New(7, "Ivan", "Petrov")
	s.ExpiresAt = time.Now().Add(-1 * time.Minute)

	if err := session.Save(p, s); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	_, err := session.Load(p)
	if !errors.Is(err, serr.ErrNoSession) {
		t.Fatalf("expected ErrNoSession for expired session, got %v", err)
	}
}

func TestNew_ExpiresInTTL(t *testing.T) {
	before := time.Now()
	s := session.New(7, "Ivan", "Petrov")

	left := s.ExpiresAt.Sub(before)
	if left <= 0 || left > session.TTL {
		t.Fatalf("expected expiry within TTL, got %v", left)
	}
	if s.Expired() {
		t.Fatal("fresh session must not be expired")
	}
}

func TestLoad_BadJSON_ReturnsError(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "session.json")

	if err := os.WriteFile(p, []byte("{bad-json"), 0o600); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	_, err := session.Load(p)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if errors.Is(err, serr.ErrNoSession) {
		t.Fatalf("bad json must not be reported as missing session")
	}
}

func TestClear_RemovesFile_AndIsIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "session.json")

	if err := session.Save(p, session.New(7, "Ivan", "Petrov")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := session.Clear(p); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err=%v", err)
	}

	// повторный Clear — no-op
	if err := session.Clear(p); err != nil {
		t.Fatalf("second Clear returned error: %v", err)
	}
}
