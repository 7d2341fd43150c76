package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/mlops-panel/internal/adapters/api/rest"
	configtoml "github.com/bnema/mlops-panel/internal/adapters/config/toml"
	"github.com/bnema/mlops-panel/internal/adapters/logging"
	"github.com/bnema/mlops-panel/internal/application"
	"github.com/bnema/mlops-panel/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	config   configtoml.Config
	logger   *slog.Logger
	logFile  slog.Handler
	closeLog func() error
	clock    ports.Clock
}

// wireApp loads the configuration and the diagnostics logger. Terminal
// diagnostics go to stderr; --log-file adds a JSON copy.
func wireApp(cfg *viper.Viper, opts *rootOptions, stderr io.Writer) (*app, error) {
	config, err := configtoml.Load(cfg)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	terminal, err := logging.New(stderr, config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	a := &app{
		config:   config,
		closeLog: func() error { return nil },
		clock:    ports.SystemClock{},
	}

	if opts.logFile != "" {
		fileLogger, closeFile, err := logging.OpenFile(opts.logFile, config.LogLevel)
		if err != nil {
			return nil, err
		}
		a.logFile = fileLogger.Handler()
		a.closeLog = closeFile
	}

	a.useLogHandler(terminal.Handler())
	return a, nil
}

// useLogHandler sends terminal diagnostics to handler. The log file, when
// open, keeps receiving a copy.
func (a *app) useLogHandler(handler slog.Handler) {
	if a.logFile != nil {
		handler = logging.Fanout{handler, a.logFile}
	}
	a.logger = slog.New(handler)
}

func (a *app) newClient() (*rest.Client, error) {
	client, err := rest.NewClient(
		a.config.APIRoot,
		rest.WithRequestTimeout(a.config.RequestTimeout),
		rest.WithLogger(a.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("wire pipeline client: %w", err)
	}
	return client, nil
}

// newOrchestrator builds the action runner over view and prompt, with an
// activity log that re-renders into view.
func (a *app) newOrchestrator(view ports.View, prompt ports.Prompter) (*application.Orchestrator, error) {
	client, err := a.newClient()
	if err != nil {
		return nil, err
	}

	session := application.NewViewSession(view, a.clock)
	return application.NewOrchestrator(client, session, view, prompt, a.logger), nil
}
