package config

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigReadsDotenv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("JWT_SECRET=dotenv-jwt-secret\nSESSION_SECRET=dotenv-session-secret\n"), 0644))

	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	// godotenv не перекрывает уже выставленные переменные
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("SESSION_SECRET")
	t.Setenv("ENV", "dev")

	cfg := LoadConfig()
	assert.Equal(t, "dotenv-jwt-secret", cfg.JWTSecret)
	assert.Equal(t, "dotenv-session-secret", cfg.SessionSecret)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "gpt-4", cfg.AIModel)
}

func TestInitSessionStoreUsesConfiguredSecret(t *testing.T) {
	old := Store
	t.Cleanup(func() { Store = old })

	InitSessionStore(Config{SessionSecret: "configured-session-secret"})
	assert.NotSame(t, old, Store)
	assert.Equal(t, "/", Store.Options.Path)
	assert.True(t, Store.Options.HttpOnly)

	// подписанная этим store кука должна читаться обратно
	req := httptest.NewRequest("GET", "/", nil)
	session, err := Store.Get(req, "session-name")
	assert.NoError(t, err)
	session.Values["user_id"] = uint(7)

	w := httptest.NewRecorder()
	assert.NoError(t, session.Save(req, w))

	req2 := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		req2.AddCookie(c)
	}
	session2, err := Store.Get(req2, "session-name")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), session2.Values["user_id"])
}
