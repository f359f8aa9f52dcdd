package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves TAXSH_RUNTIME_PATH before the .env file is loaded.
func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("TAXSH_RUNTIME_PATH"))
}

func resolveRuntimePath(path string) string {
	if path == "" {
		path = ".taxsh"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
