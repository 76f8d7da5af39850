package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, root string, body string) string {
	t.Helper()
	path := filepath.Join(root, ConfigDirName, ConfigFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func noEnv(string) (string, bool) { return "", false }

func TestLoadGlobalConfigReadsFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Cleanup(SetUserHomeDirForTest(func() (string, error) {
		return tempDir, nil
	}))

	writeConfig(t, tempDir, `{"schemaVersion":1,"api":{"baseUrl":"http://review.internal:9000"}}`)

	cfg, present, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !present {
		t.Fatalf("expected config to be present")
	}
	if cfg.SchemaVersion == nil || *cfg.SchemaVersion != 1 {
		t.Fatalf("expected schemaVersion 1, got %#v", cfg.SchemaVersion)
	}
	if cfg.API == nil || cfg.API.BaseURL == nil || *cfg.API.BaseURL != "http://review.internal:9000" {
		t.Fatalf("expected baseUrl, got %#v", cfg.API)
	}
	if cfg.TUI != nil {
		t.Fatalf("expected tui section to be nil, got %#v", cfg.TUI)
	}
}

func TestLoadGlobalConfigMissingFileSkips(t *testing.T) {
	tempDir := t.TempDir()
	t.Cleanup(SetUserHomeDirForTest(func() (string, error) {
		return tempDir, nil
	}))

	cfg, present, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if present {
		t.Fatalf("expected config to be missing")
	}
	if cfg != (RawConfig{}) {
		t.Fatalf("expected empty config, got %#v", cfg)
	}
}

func TestLoadGlobalConfigMissingHomeSkips(t *testing.T) {
	t.Cleanup(SetUserHomeDirForTest(func() (string, error) {
		return "", errors.New("no home")
	}))

	cfg, present, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if present {
		t.Fatalf("expected config to be missing")
	}
	if cfg != (RawConfig{}) {
		t.Fatalf("expected empty config, got %#v", cfg)
	}
}

func TestLoadProjectConfigInvalidJSONSkips(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `{"schemaVersion":1,"api":`)

	cfg, present, err := LoadProjectConfig(tempDir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if present {
		t.Fatalf("expected config to be missing")
	}
	if cfg != (RawConfig{}) {
		t.Fatalf("expected empty config, got %#v", cfg)
	}
}

func TestLoadProjectConfigTrailingDocumentSkips(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `{"schemaVersion":1}{"schemaVersion":1}`)

	_, present, err := LoadProjectConfig(tempDir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if present {
		t.Fatalf("expected config with trailing data to be skipped")
	}
}

func TestLoadProjectConfigUnsupportedSchemaSkips(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `{"schemaVersion":99,"api":{"baseUrl":"http://x"}}`)

	cfg, present, err := LoadProjectConfig(tempDir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if present {
		t.Fatalf("expected config to be missing")
	}
	if cfg != (RawConfig{}) {
		t.Fatalf("expected empty config, got %#v", cfg)
	}
}

func TestLoadProjectConfigEmptyRootSkips(t *testing.T) {
	cfg, present, err := LoadProjectConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if present {
		t.Fatalf("expected config to be missing")
	}
	if cfg != (RawConfig{}) {
		t.Fatalf("expected empty config, got %#v", cfg)
	}
}

func TestLoadConfigProjectOverridesGlobal(t *testing.T) {
	homeDir := t.TempDir()
	projectDir := t.TempDir()
	t.Cleanup(SetUserHomeDirForTest(func() (string, error) {
		return homeDir, nil
	}))
	t.Cleanup(SetLookupEnvForTest(noEnv))

	writeConfig(t, homeDir, `{"schemaVersion":1,"api":{"baseUrl":"http://global:1"},"tui":{"altScreen":false},"log":{"file":"global.log"}}`)
	writeConfig(t, projectDir, `{"schemaVersion":1,"api":{"baseUrl":"http://project:2/"}}`)

	resolved, err := LoadConfig(projectDir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if resolved.API.BaseURL != "http://project:2" {
		t.Fatalf("baseUrl = %q, want %q", resolved.API.BaseURL, "http://project:2")
	}
	if resolved.TUI.AltScreen {
		t.Fatalf("altScreen = true, want false from global")
	}
	if resolved.Log.File != "global.log" {
		t.Fatalf("log file = %q, want global.log", resolved.Log.File)
	}
}

func TestLoadConfigEnvOverridesFiles(t *testing.T) {
	homeDir := t.TempDir()
	projectDir := t.TempDir()
	t.Cleanup(SetUserHomeDirForTest(func() (string, error) {
		return homeDir, nil
	}))
	t.Cleanup(SetLookupEnvForTest(func(key string) (string, bool) {
		switch key {
		case EnvAPIURL:
			return " http://env:3/ ", true
		case EnvLogFile:
			return "env.log", true
		}
		return "", false
	}))

	writeConfig(t, projectDir, `{"schemaVersion":1,"api":{"baseUrl":"http://project:2"}}`)

	resolved, err := LoadConfig(projectDir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if resolved.API.BaseURL != "http://env:3" {
		t.Fatalf("baseUrl = %q, want http://env:3", resolved.API.BaseURL)
	}
	if resolved.Log.File != "env.log" {
		t.Fatalf("log file = %q, want env.log", resolved.Log.File)
	}
}

func TestSaveProjectConfigWritesOnce(t *testing.T) {
	projectDir := t.TempDir()

	path, wrote, err := SaveProjectConfig(projectDir, DefaultRawConfig())
	if err != nil {
		t.Fatalf("save config: %v", err)
	}
	if !wrote {
		t.Fatalf("expected config to be written")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var raw RawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if raw.API == nil || raw.API.BaseURL == nil || *raw.API.BaseURL != DefaultAPIBaseURL {
		t.Fatalf("expected default baseUrl in written config, got %s", data)
	}

	_, wrote, err = SaveProjectConfig(projectDir, RawConfig{})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if wrote {
		t.Fatalf("expected existing config to be left alone")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only config.json in config dir, got %d entries", len(entries))
	}
}

func TestLoadDotEnvReadsProjectRoot(t *testing.T) {
	projectDir := t.TempDir()
	t.Setenv(EnvLogFile, "")
	if err := os.Unsetenv(EnvLogFile); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}
	body := EnvLogFile + "=dotenv.log\n"
	if err := os.WriteFile(filepath.Join(projectDir, DotEnvFileName), []byte(body), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	LoadDotEnv(projectDir)
	if got := os.Getenv(EnvLogFile); got != "dotenv.log" {
		t.Fatalf("%s = %q, want dotenv.log", EnvLogFile, got)
	}

	// A root without .env leaves the environment alone.
	LoadDotEnv(t.TempDir())
	if got := os.Getenv(EnvLogFile); got != "dotenv.log" {
		t.Fatalf("%s = %q after second load, want dotenv.log", EnvLogFile, got)
	}
}
