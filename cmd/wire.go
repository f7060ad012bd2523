package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/bnema/cubesign/internal/adapters/notify/console"
	"github.com/bnema/cubesign/internal/adapters/notify/pushplus"
	"github.com/bnema/cubesign/internal/adapters/remote/classcube"
	statusadapter "github.com/bnema/cubesign/internal/adapters/render/status"
	tomlrepo "github.com/bnema/cubesign/internal/adapters/repo/toml"
	"github.com/bnema/cubesign/internal/application"
	"github.com/bnema/cubesign/internal/domain"
	"github.com/bnema/cubesign/internal/logging"
	"github.com/bnema/cubesign/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	repo           ports.ConfigRepository
	statusRenderer func(statusadapter.Report) (string, error)
	remoteBaseURL  string
	pushBaseURL    string
	logFile        string
	clock          ports.Clock
	location       *time.Location
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire config repository: %w", err)
	}

	return &app{
		repo:           repo,
		statusRenderer: statusadapter.Render,
		remoteBaseURL:  os.Getenv("CUBESIGN_REMOTE_URL"),
		pushBaseURL:    os.Getenv("CUBESIGN_PUSH_URL"),
		logFile:        envOrDefault("CUBESIGN_LOG_FILE", filepath.Join(xdg.StateHome, "cubesign", "cubesign.log")),
		clock:          ports.SystemClock{},
		location:       time.Local,
	}, nil
}

func (a *app) newLogger(cfg domain.Config, quiet bool) (*slog.Logger, error) {
	return logging.New(logging.Config{
		Debug: cfg.Debug,
		Quiet: quiet,
		File:  a.logFile,
	})
}

// newEngine assembles the full check-in pipeline for one loaded config. The
// CUBESIGN_REMOTE_URL and CUBESIGN_PUSH_URL environment overrides win over
// the config so tests and staging never touch the real site.
func (a *app) newEngine(cfg domain.Config, logger *slog.Logger) (*application.Engine, error) {
	remoteURL := a.remoteBaseURL
	if remoteURL == "" {
		remoteURL = cfg.RemoteBaseURL
	}

	var clientOpts []classcube.Option
	if cfg.Debug {
		clientOpts = append(clientOpts, classcube.WithArchive(classcube.NewExchangeArchive("")))
	}
	client := classcube.NewClient(remoteURL, logger, clientOpts...)

	// notify.system off silences the per-attempt notification sink; the
	// attempt itself is still logged by the engine and orchestrator.
	notifyLogger := logger
	if !cfg.SystemNotify {
		notifyLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	orchestrator := application.NewOrchestrator(client, logger)
	engine := application.NewEngine(
		orchestrator,
		console.NewNotifier(notifyLogger),
		pushplus.NewGateway(a.pushBaseURL),
		a.clock,
		logger,
		a.location,
	)

	if err := engine.Reconfigure(cfg); err != nil {
		return nil, err
	}

	return engine, nil
}

func (a *app) newClient(cfg domain.Config, logger *slog.Logger) *classcube.Client {
	remoteURL := a.remoteBaseURL
	if remoteURL == "" {
		remoteURL = cfg.RemoteBaseURL
	}

	return classcube.NewClient(remoteURL, logger)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
