package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/taxsh/internal/config"
	"github.com/sandevgo/taxsh/internal/core"
	"github.com/sandevgo/taxsh/internal/service/command"
	"github.com/sandevgo/taxsh/internal/service/state"
	"github.com/sandevgo/taxsh/internal/transport/cli"
	"github.com/sandevgo/taxsh/pkg/log"
	"github.com/sandevgo/taxsh/pkg/srv"
)

// NewShell wires a fresh session, the command set and the terminal together.
// The returned services release the terminal once the shell has stopped.
func NewShell(cfg core.ShellConfig) (*cli.Shell, *state.Session, []srv.Service, error) {
	session := state.NewRandomSession(cfg.GetSeed())

	registry, err := command.NewDefaultRegistry(session)
	if err != nil {
		return nil, nil, nil, err
	}

	src, err := cli.NewReadlineSource(cfg.GetPrompt(), cfg.GetHistoryPath())
	if err != nil {
		return nil, nil, nil, err
	}

	shell := cli.NewShell(src, command.New(registry), src.Stdout())
	return shell, session, []srv.Service{srv.NewCleanup(src.Close)}, nil
}

// loadConfig reads the optional .env file from the runtime directory, then
// parses the environment.
func loadConfig(ctx context.Context) (*config.AppConfig, error) {
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, err
	}
	return config.NewAppConfig()
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := (&config.AppConfig{RuntimePath: runtimePath}).GetEnvPath()

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
