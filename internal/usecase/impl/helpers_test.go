package impl

import (
	"io"
	"log/slog"
	"time"

	"lounas/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			TTL:        time.Hour,
			CookieName: "lounas_session",
		},
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Bootstrap: &config.BootstrapConfig{
			AdminEmail:    "admin@example.com",
			AdminPassword: "very-secret-password",
		},
	}
}
