package tests

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/session"
)

// writeEnvelope пишет конверт {results, error} так же, как api-слой сервера.
func writeEnvelope(t *testing.T, w http.ResponseWriter, results any, errText string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"results": results,
		"error":   errText,
	}); err != nil {
		t.Fatalf("encode envelope: %v", err)
	}
}

// newTestApp возвращает App с путём сессии во временной директории.
func newTestApp(t *testing.T, serverURL string) *cli.App {
	t.Helper()

	return &cli.App{
		ServerURL:   serverURL,
		SessionPath: filepath.Join(t.TempDir(), "session.json"),
	}
}

// newLoggedInApp — App с уже живой сессией пользователя 7.
func newLoggedInApp(t *testing.T, serverURL string) *cli.App {
	t.Helper()

	app := newTestApp(t, serverURL)
	app.Session = session.New(7, "Ivan", "Petrov")
	return app
}
