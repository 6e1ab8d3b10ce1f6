// Package app provides the application context and dependency management
// for the strmsync CLI. It centralizes configuration, logging, and the
// strmsync client behind a single App value handed to every command.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/strmsync/strmsync"
)

// App represents the strmsync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Strmsync client (lazy-initialized, singleton)
	mu   sync.Mutex
	sync strmsync.Strmsync
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(config)

	return &App{
		version: version,
		commit:  commit,
		date:    date,
		config:  config,
		logger:  &logger,
	}, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Strmsync returns the strmsync client, creating it lazily if needed.
// Required configuration is validated on first use.
func (a *App) Strmsync() (strmsync.Strmsync, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sync != nil {
		return a.sync, nil
	}

	if err := a.config.Validate(); err != nil {
		return nil, err
	}

	client, err := strmsync.New(
		strmsync.WithMediaRoot(a.config.MediaRoot),
		strmsync.WithUpstream(a.config.UpstreamURL, a.config.UpstreamToken),
		strmsync.WithLibraries(a.config.Libraries...),
		strmsync.WithInterval(a.config.Interval),
		strmsync.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	a.sync = client
	return client, nil
}

// Shutdown stops any running schedule. Safe to call when nothing was started.
func (a *App) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sync != nil {
		if err := a.sync.ScheduleOff(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to stop schedule during shutdown")
		}
	}
}
