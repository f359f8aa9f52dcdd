package config

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	RuntimePath string `env:"TAXSH_RUNTIME_PATH" envDefault:".taxsh"`
	Prompt      string `env:"TAXSH_PROMPT" envDefault:"> "`

	// Keep readline input history between runs. Session state is never saved.
	History bool `env:"TAXSH_HISTORY" envDefault:"false"`

	// Seed for the initial tax bracket pick, 0 picks a random seed.
	Seed uint64 `env:"TAXSH_SEED" envDefault:"0"`
}

func NewAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetPrompt() string {
	return c.Prompt
}

// GetHistoryPath is empty when history is disabled.
func (c AppConfig) GetHistoryPath() string {
	if !c.History {
		return ""
	}
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) GetSeed() uint64 {
	return c.Seed
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

// ToEnv returns the effective settings keyed by their environment variable.
func (c AppConfig) ToEnv() map[string]string {
	return map[string]string{
		"TAXSH_RUNTIME_PATH": c.RuntimePath,
		"TAXSH_PROMPT":       c.Prompt,
		"TAXSH_HISTORY":      strconv.FormatBool(c.History),
		"TAXSH_SEED":         strconv.FormatUint(c.Seed, 10),
	}
}
