package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/fharpR4/roomie-app/internal/adapters/gateway/rest"
	sessionfile "github.com/fharpR4/roomie-app/internal/adapters/session/file"
	"github.com/fharpR4/roomie-app/internal/application"
	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/logging"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".roomie"

	backendURLKey  = "backend.url"
	anonKeyKey     = "backend.anon_key"
	sessionPathKey = "session.path"
	logPathKey     = "log.path"
	bucketKey      = "storage.verification_bucket"
)

type app struct {
	sessions *application.SessionService
	gateway  *rest.Client
	logger   *slog.Logger
}

func wireApp() (*app, error) {
	cfg, err := loadConfig(viper.New())
	if err != nil {
		return nil, err
	}

	backendURL := cfg.GetString(backendURLKey)
	if backendURL == "" {
		return nil, errors.New("backend url is not configured: set backend.url in ~/.roomie/config.toml or ROOMIE_BACKEND_URL")
	}

	logger := logging.NewFileLogger(cfg.GetString(logPathKey), slog.LevelInfo)

	gateway := rest.NewClient(backendURL, cfg.GetString(anonKeyKey), logger)
	store := sessionfile.NewStore(cfg.GetString(sessionPathKey))

	sessions := application.NewSessionService(gateway, store, logger)
	if bucket := cfg.GetString(bucketKey); bucket != "" {
		sessions.VerificationBucket = bucket
	}

	// Requests carry the active session token once one exists; until then
	// the anon key authenticates.
	gateway.TokenSource = func() string {
		return sessions.Current().Token
	}

	return &app{sessions: sessions, gateway: gateway, logger: logger}, nil
}

func loadConfig(cfg *viper.Viper) (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	root := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(root)
	cfg.SetEnvPrefix("ROOMIE")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(sessionPathKey, filepath.Join(root, "session"))
	cfg.SetDefault(logPathKey, filepath.Join(root, "logs", "roomie.log"))
	cfg.SetDefault(bucketKey, "verification-documents")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

// requireSession resolves the stored session for commands that need one.
func requireSession(ctx context.Context, app *app) (domain.Session, error) {
	session, authenticated := app.sessions.Boot(ctx)
	if !authenticated {
		return domain.Session{}, errors.New("not signed in: run `roomie login` first")
	}
	return session, nil
}
