package config

import "strings"

// ResolveConfig merges project/global configs with built-in defaults.
// Precedence per key: project > global > defaults.
func ResolveConfig(project RawConfig, global RawConfig) ResolvedConfig {
	defaults := DefaultResolvedConfig()

	baseURL := resolveString(
		valueFromAPI(project, func(api RawAPI) *string { return api.BaseURL }),
		valueFromAPI(global, func(api RawAPI) *string { return api.BaseURL }),
		defaults.API.BaseURL,
	)
	altScreen := resolveBool(
		valueFromTUI(project, func(tui RawTUI) *bool { return tui.AltScreen }),
		valueFromTUI(global, func(tui RawTUI) *bool { return tui.AltScreen }),
		defaults.TUI.AltScreen,
	)
	logFile := resolveString(
		valueFromLog(project, func(log RawLog) *string { return log.File }),
		valueFromLog(global, func(log RawLog) *string { return log.File }),
		defaults.Log.File,
	)

	return ResolvedConfig{
		SchemaVersion: SchemaVersion,
		API: ResolvedAPI{
			BaseURL: strings.TrimRight(baseURL, "/"),
		},
		TUI: ResolvedTUI{
			AltScreen: altScreen,
		},
		Log: ResolvedLog{
			File: logFile,
		},
	}
}

func valueFromAPI(cfg RawConfig, pick func(RawAPI) *string) *string {
	if cfg.API == nil {
		return nil
	}
	return pick(*cfg.API)
}

func valueFromTUI(cfg RawConfig, pick func(RawTUI) *bool) *bool {
	if cfg.TUI == nil {
		return nil
	}
	return pick(*cfg.TUI)
}

func valueFromLog(cfg RawConfig, pick func(RawLog) *string) *string {
	if cfg.Log == nil {
		return nil
	}
	return pick(*cfg.Log)
}

func resolveString(projectVal *string, globalVal *string, defaultVal string) string {
	if value := normalizeString(projectVal); value != "" {
		return value
	}
	if value := normalizeString(globalVal); value != "" {
		return value
	}
	if value := normalizeString(&defaultVal); value != "" {
		return value
	}
	return defaultVal
}

func resolveBool(projectVal *bool, globalVal *bool, defaultVal bool) bool {
	if projectVal != nil {
		return *projectVal
	}
	if globalVal != nil {
		return *globalVal
	}
	return defaultVal
}

func normalizeString(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
