package msgdlg

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BackendEnv overrides Config.Backend when set.
const BackendEnv = "MSGDLG_BACKEND"

// Default delays for the timed dialog kinds.
const (
	DefaultConfirmDelay = 2000 * time.Millisecond
	DefaultCancelDelay  = 5000 * time.Millisecond
)

// LogConfig is the resolved rotation policy for NewFileLogger.
type LogConfig struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	ToStdout   bool
}

// DefaultLogConfig rotates at 10 MB and keeps a week of compressed files.
func DefaultLogConfig() LogConfig {
	return LogConfig{MaxSizeMB: 10, MaxBackups: 7, MaxAgeDays: 7, Compress: true, ToStdout: true}
}

// LogSettings is the "logging" section of the config file. Zero or
// absent fields keep the DefaultLogConfig value.
type LogSettings struct {
	MaxSizeMB  int   `json:"max_size_mb,omitempty"`
	MaxBackups int   `json:"max_backups,omitempty"`
	MaxAgeDays int   `json:"max_age_days,omitempty"`
	Compress   *bool `json:"compress,omitempty"`
	ToStdout   *bool `json:"to_stdout,omitempty"`
}

// Config selects and tunes the dialog backend.
type Config struct {
	Backend          string       `json:"backend,omitempty"`            // "auto" (default) or a backend name
	Fallback         string       `json:"fallback,omitempty"`           // "none" (default) or "console"
	Exclude          []string     `json:"exclude,omitempty"`            // backends "auto" must skip
	ConfirmDelayMs   int          `json:"confirm_delay_ms,omitempty"`   // RequestConfirmation default delay (default: 2000)
	CancelDelayMs    int          `json:"cancel_delay_ms,omitempty"`    // OfferCancellation default delay (default: 5000)
	TimerIntervalMs  int          `json:"timer_interval_ms,omitempty"`  // Timed dialog tick (default: 200)
	ToolCacheSeconds int          `json:"tool_cache_seconds,omitempty"` // How long tool lookups are cached (default: 300)
	Logging          *LogSettings `json:"logging,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{Backend: "auto", Fallback: "none"}
}

// BackendName returns the requested backend, honouring BackendEnv.
func (c Config) BackendName() string {
	name := c.Backend
	if env := os.Getenv(BackendEnv); env != "" {
		name = env
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "auto"
	}
	return name
}

// FallbackName returns the headless fallback backend name.
func (c Config) FallbackName() string {
	name := strings.ToLower(strings.TrimSpace(c.Fallback))
	if name == "" {
		return "none"
	}
	return name
}

// Excluded reports whether auto resolution must skip the named backend.
func (c Config) Excluded(name string) bool {
	for _, ex := range c.Exclude {
		if strings.EqualFold(strings.TrimSpace(ex), name) {
			return true
		}
	}
	return false
}

// ConfirmDelay returns the configured RequestConfirmation default.
func (c Config) ConfirmDelay() time.Duration {
	if c.ConfirmDelayMs <= 0 {
		return DefaultConfirmDelay
	}
	return time.Duration(c.ConfirmDelayMs) * time.Millisecond
}

// CancelDelay returns the configured OfferCancellation default.
func (c Config) CancelDelay() time.Duration {
	if c.CancelDelayMs <= 0 {
		return DefaultCancelDelay
	}
	return time.Duration(c.CancelDelayMs) * time.Millisecond
}

// TimerInterval returns the timed dialog tick.
func (c Config) TimerInterval() time.Duration {
	if c.TimerIntervalMs <= 0 {
		return DefaultTimerInterval
	}
	return time.Duration(c.TimerIntervalMs) * time.Millisecond
}

// ToolCacheTTL returns how long dialog tool lookups stay cached.
func (c Config) ToolCacheTTL() time.Duration {
	if c.ToolCacheSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.ToolCacheSeconds) * time.Second
}

// LoggingOrDefault overlays the logging section on DefaultLogConfig.
func (c *Config) LoggingOrDefault() LogConfig {
	cfg := DefaultLogConfig()
	if c == nil || c.Logging == nil {
		return cfg
	}
	ls := c.Logging
	if ls.MaxSizeMB > 0 {
		cfg.MaxSizeMB = ls.MaxSizeMB
	}
	if ls.MaxBackups > 0 {
		cfg.MaxBackups = ls.MaxBackups
	}
	if ls.MaxAgeDays > 0 {
		cfg.MaxAgeDays = ls.MaxAgeDays
	}
	if ls.Compress != nil {
		cfg.Compress = *ls.Compress
	}
	if ls.ToStdout != nil {
		cfg.ToStdout = *ls.ToStdout
	}
	return cfg
}

// ConfigDir returns the configuration directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "msgdlg")
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "msgdlg.json")
}

// LoadConfig loads configuration from the specified path
// If path is empty, uses the default path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigOrDefault loads path and falls back to DefaultConfig when the
// file does not exist.
func LoadConfigOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if os.IsNotExist(err) {
		def := DefaultConfig()
		return &def, nil
	}
	return cfg, err
}

// SaveConfig saves configuration to the specified path
// If path is empty, uses the default path
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// CreateDefaultConfig creates a default configuration file if it doesn't exist
func CreateDefaultConfig() error {
	path := DefaultConfigPath()
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := DefaultConfig()
	cfg.ConfirmDelayMs = int(DefaultConfirmDelay / time.Millisecond)
	cfg.CancelDelayMs = int(DefaultCancelDelay / time.Millisecond)
	return SaveConfig(&cfg, path)
}
