package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gravitrone/resale-admin/cli/internal/api"
	"github.com/gravitrone/resale-admin/cli/internal/config"
	"github.com/gravitrone/resale-admin/cli/internal/logging"
	"github.com/gravitrone/resale-admin/cli/internal/ui/components"
)

// Session is the loaded config with a client and logger built from it.
type Session struct {
	Config *config.Config
	Client *api.Client
	Log    *zap.Logger
}

// LoadSession reads the config and builds an authenticated client. It fails
// when no token is saved or the theme is unknown.
func LoadSession() (*Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("not logged in: %w", err)
	}
	if err := components.ApplyTheme(cfg.Theme); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return NewSession(cfg), nil
}

// NewSession builds the client and logger for cfg. A log file that cannot
// be opened leaves the session with a no-op logger.
func NewSession(cfg *config.Config) *Session {
	log, _ := logging.NewOrNop(cfg.LogPath(), cfg.LogLevel)
	client := api.NewClient(
		cfg.APIBaseURL(api.DefaultBaseURL),
		api.Credentials{Token: cfg.Token},
		api.WithLogger(log),
	)
	return &Session{Config: cfg, Client: client, Log: log}
}

// Close flushes the logger.
func (s *Session) Close() {
	_ = s.Log.Sync()
}
