package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/sessions"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB    *gorm.DB
	Store = newCookieStore(os.Getenv("SESSION_SECRET"))
)

func newCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600 * 8,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// InitSessionStore пересоздает cookie store с секретом из конфигурации.
// Переменные пакета инициализируются раньше, чем LoadConfig подгрузит .env,
// поэтому секрет нужно передать сюда после загрузки.
func InitSessionStore(cfg Config) {
	Store = newCookieStore(cfg.SessionSecret)
}

func InitDB(cfg Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}
