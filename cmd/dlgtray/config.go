package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"msgdlg"
)

// Config represents the tray configuration. The dialog settings are the
// msgdlg ones, inlined at the top level of the file.
type Config struct {
	msgdlg.Config
	Entries        []DialogEntry `json:"entries,omitempty"`
	ScriptsDir     string        `json:"scripts_dir,omitempty"`     // default: ~/.config/msgdlg/scripts
	DisableHotkeys bool          `json:"disable_hotkeys,omitempty"` // do not register modifier+[0-9]
}

// DialogEntry is one configured menu item. Index doubles as the hotkey
// digit. With Script set the script runs instead of the dialog.
type DialogEntry struct {
	Index   int      `json:"index"`
	Name    string   `json:"name"`
	Kind    string   `json:"kind"`
	Topic   string   `json:"topic,omitempty"`   // default: Name
	Heading string   `json:"heading,omitempty"` // bold lead line
	Message string   `json:"message,omitempty"`
	Choices []string `json:"choices,omitempty"`  // kind "choices" only
	DelayMs *int     `json:"delay_ms,omitempty"` // confirm/cancellable; absent uses the configured default
	Script  string   `json:"script,omitempty"`   // Lua script filename in the scripts folder
}

// DialogKind parses Kind.
func (e DialogEntry) DialogKind() (msgdlg.Kind, error) {
	return msgdlg.ParseKind(e.Kind)
}

// Delay returns the entry delay, or msgdlg.DefaultDelay when none is set.
func (e DialogEntry) Delay() time.Duration {
	if e.DelayMs == nil || *e.DelayMs < 0 {
		return msgdlg.DefaultDelay
	}
	return time.Duration(*e.DelayMs) * time.Millisecond
}

// Title returns the window title for the entry.
func (e DialogEntry) Title() string {
	if e.Topic != "" {
		return e.Topic
	}
	return e.Name
}

// Validate reports entries that can never run.
func (c *Config) Validate() error {
	seen := make(map[int]string)
	for _, e := range c.Entries {
		if e.Name == "" {
			return fmt.Errorf("entry %d has no name", e.Index)
		}
		if e.Script == "" {
			if _, err := e.DialogKind(); err != nil {
				return fmt.Errorf("entry %q: %w", e.Name, err)
			}
		}
		if prev, dup := seen[e.Index]; dup {
			return fmt.Errorf("entries %q and %q share index %d", prev, e.Name, e.Index)
		}
		seen[e.Index] = e.Name
	}
	return nil
}

// EntryByIndex finds the entry bound to a hotkey digit.
func (c *Config) EntryByIndex(index int) (DialogEntry, bool) {
	if c == nil {
		return DialogEntry{}, false
	}
	for _, e := range c.Entries {
		if e.Index == index {
			return e, true
		}
	}
	return DialogEntry{}, false
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	return filepath.Join(msgdlg.ConfigDir(), "dlgtray.json")
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

	cfg := Config{Config: msgdlg.DefaultConfig()}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
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
func CreateDefaultConfig(path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	delay := 3000
	cfg := &Config{
		Config: msgdlg.DefaultConfig(),
		Entries: []DialogEntry{
			{Index: 1, Name: "Say hello", Kind: "inform", Heading: "Hello", Message: "dlgtray is running."},
			{Index: 2, Name: "Pick a colour", Kind: "choices", Message: "Which one?", Choices: []string{"Red", "Green", "Blue"}},
			{Index: 3, Name: "Dangerous action", Kind: "confirm", Heading: "Really?", Message: "OK unlocks after three seconds.", DelayMs: &delay},
		},
	}
	return SaveConfig(cfg, path)
}
