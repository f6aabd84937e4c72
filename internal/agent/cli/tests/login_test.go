package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/session"
	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
	smodels "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/models"
)

func TestNewLoginCmd_Success_SavesSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Login", func(w http.ResponseWriter, r *http.Request) {
		var req smodels.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Login != "ivan" || req.Password != "StrongPass123" {
			t.Fatalf("unexpected credentials: %q / %q", req.Login, req.Password)
		}

		writeEnvelope(t, w, smodels.AuthResult{
			UserID: 7, ID: 7, FirstName: "Ivan", LastName: "Petrov",
		}, "")
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	cmd := cli.NewLoginCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader("StrongPass123\n"))

	cmd.SetArgs([]string{"--login", "ivan", "--password-stdin"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "welcome, Ivan Petrov") {
		t.Fatalf("unexpected output: %q", got)
	}

	s, err := session.Load(app.SessionPath)
	if err != nil {
		t.Fatalf("expected saved session, got %v", err)
	}
	if s.UserID != 7 {
		t.Fatalf("expected userId 7, got %d", s.UserID)
	}
}

func TestNewLoginCmd_InvalidCredentials_ReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, nil, serr.ErrInvalidCredentials.Error())
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	cmd := cli.NewLoginCmd(app)

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("WrongPass\n"))

	cmd.SetArgs([]string{"--login", "ivan", "--password-stdin"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if !strings.Contains(err.Error(), serr.ErrInvalidCredentials.Error()) {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}

	if _, statErr := os.Stat(app.SessionPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no session file after failed login, stat err: %v", statErr)
	}
}

func TestNewLogoutCmd_RemovesSessionFile_Idempotent(t *testing.T) {
	app := newLoggedInApp(t, "http://127.0.0.1:8080")
	if err := session.Save(app.SessionPath, app.Session); err != nil {
		t.Fatalf("save session: %v", err)
	}

	cmd := cli.NewLogoutCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out.String(), "logged out") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if _, err := os.Stat(app.SessionPath); !os.IsNotExist(err) {
		t.Fatalf("expected session file removed, stat err: %v", err)
	}
	if app.Session != nil {
		t.Fatalf("expected in-memory session cleared")
	}

	// повторный logout без файла — не ошибка
	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected idempotent logout, got %v", err)
	}
}
