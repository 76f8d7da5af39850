package config

const (
	SchemaVersion = 1

	DefaultAPIBaseURL = "http://localhost:8000"
	DefaultAltScreen  = true
	DefaultLogFile    = ""

	// ConfigDirName is the directory holding config.json, both under the
	// user's home and under a project root.
	ConfigDirName  = ".reviewer"
	ConfigFileName = "config.json"
)

type RawConfig struct {
	SchemaVersion *int    `json:"schemaVersion,omitempty"`
	API           *RawAPI `json:"api,omitempty"`
	TUI           *RawTUI `json:"tui,omitempty"`
	Log           *RawLog `json:"log,omitempty"`
}

type RawAPI struct {
	BaseURL *string `json:"baseUrl,omitempty"`
}

type RawTUI struct {
	AltScreen *bool `json:"altScreen,omitempty"`
}

type RawLog struct {
	File *string `json:"file,omitempty"`
}

type ResolvedConfig struct {
	SchemaVersion int         `json:"schemaVersion"`
	API           ResolvedAPI `json:"api"`
	TUI           ResolvedTUI `json:"tui"`
	Log           ResolvedLog `json:"log"`
}

type ResolvedAPI struct {
	BaseURL string `json:"baseUrl"`
}

type ResolvedTUI struct {
	AltScreen bool `json:"altScreen"`
}

type ResolvedLog struct {
	File string `json:"file"`
}

func DefaultResolvedConfig() ResolvedConfig {
	return ResolvedConfig{
		SchemaVersion: SchemaVersion,
		API: ResolvedAPI{
			BaseURL: DefaultAPIBaseURL,
		},
		TUI: ResolvedTUI{
			AltScreen: DefaultAltScreen,
		},
		Log: ResolvedLog{
			File: DefaultLogFile,
		},
	}
}

// DefaultRawConfig is the document written by `reviewer init`.
func DefaultRawConfig() RawConfig {
	defaults := DefaultResolvedConfig()
	version := SchemaVersion
	baseURL := defaults.API.BaseURL
	altScreen := defaults.TUI.AltScreen
	return RawConfig{
		SchemaVersion: &version,
		API:           &RawAPI{BaseURL: &baseURL},
		TUI:           &RawTUI{AltScreen: &altScreen},
	}
}
