package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvAPIURL  = "REVIEWER_API_URL"
	EnvLogFile = "REVIEWER_LOG_FILE"

	DotEnvFileName = ".env"
)

var lookupEnv = os.LookupEnv

// LoadDotEnv loads the .env file under projectRoot when present, the same
// root the project config is read from. Variables already set in the
// process environment win.
func LoadDotEnv(projectRoot string) {
	_ = godotenv.Load(filepath.Join(projectRoot, DotEnvFileName))
}

// ApplyEnv overlays environment values on a resolved config.
func ApplyEnv(cfg ResolvedConfig, lookup func(string) (string, bool)) ResolvedConfig {
	if lookup == nil {
		return cfg
	}
	if value, ok := lookup(EnvAPIURL); ok && strings.TrimSpace(value) != "" {
		cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(value), "/")
	}
	if value, ok := lookup(EnvLogFile); ok && strings.TrimSpace(value) != "" {
		cfg.Log.File = strings.TrimSpace(value)
	}
	return cfg
}
