package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var userHomeDir = os.UserHomeDir

func GlobalConfigPath() (string, bool) {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, ConfigDirName, ConfigFileName), true
}

func ProjectConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, ConfigDirName, ConfigFileName)
}

func LoadGlobalConfig() (RawConfig, bool, error) {
	path, ok := GlobalConfigPath()
	if !ok {
		return RawConfig{}, false, nil
	}
	return loadConfigFile(path)
}

func LoadProjectConfig(projectRoot string) (RawConfig, bool, error) {
	if projectRoot == "" {
		return RawConfig{}, false, nil
	}
	return loadConfigFile(ProjectConfigPath(projectRoot))
}

// LoadConfig reads global and project configs, then applies environment
// overrides. Precedence per key: env > project > global > defaults.
func LoadConfig(projectRoot string) (ResolvedConfig, error) {
	globalCfg, _, err := LoadGlobalConfig()
	if err != nil {
		return ResolvedConfig{}, err
	}
	projectCfg, _, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return ResolvedConfig{}, err
	}
	resolved := ResolveConfig(projectCfg, globalCfg)
	return ApplyEnv(resolved, lookupEnv), nil
}

// SaveProjectConfig writes cfg to the project config path. It refuses to
// replace an existing file and reports whether it wrote one.
func SaveProjectConfig(projectRoot string, cfg RawConfig) (string, bool, error) {
	path := ProjectConfigPath(projectRoot)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return path, false, fmt.Errorf("stat config %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, false, fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return path, false, fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')
	if err := atomicWriteFile(path, data, 0o644); err != nil {
		return path, false, err
	}
	return path, true, nil
}

func loadConfigFile(path string) (RawConfig, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, false, nil
		}
		return RawConfig{}, false, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))

	var cfg RawConfig
	if err := dec.Decode(&cfg); err != nil {
		return RawConfig{}, false, nil
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return RawConfig{}, false, nil
	}
	if !isSupportedSchemaVersion(cfg.SchemaVersion) {
		return RawConfig{}, false, nil
	}

	return cfg, true, nil
}

func isSupportedSchemaVersion(version *int) bool {
	if version == nil {
		return true
	}
	return *version == SchemaVersion
}
