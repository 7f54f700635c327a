package msgdlg

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "msgdlg.json")
	data := `{
  "backend": "zenity",
  "fallback": "console",
  "confirm_delay_ms": 1500,
  "logging": {"max_size_mb": 3, "to_stdout": false}
}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Backend != "zenity" {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.FallbackName() != "console" {
		t.Errorf("FallbackName = %q", cfg.FallbackName())
	}
	if cfg.ConfirmDelay() != 1500*time.Millisecond {
		t.Errorf("ConfirmDelay = %v", cfg.ConfirmDelay())
	}
	if cfg.CancelDelay() != DefaultCancelDelay {
		t.Errorf("CancelDelay = %v, want default", cfg.CancelDelay())
	}

	lc := cfg.LoggingOrDefault()
	if lc.MaxSizeMB != 3 || lc.MaxBackups != 7 || lc.ToStdout || !lc.Compress {
		t.Errorf("log config = %+v", lc)
	}
}

func TestLoadConfigOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "auto" || cfg.FallbackName() != "none" {
		t.Errorf("default config = %+v", cfg)
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{backend"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted malformed JSON")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "msgdlg.json")
	in := Config{Backend: "gtk", TimerIntervalMs: 100}
	if err := SaveConfig(&in, path); err != nil {
		t.Fatal(err)
	}
	out, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if out.Backend != "gtk" || out.TimerInterval() != 100*time.Millisecond {
		t.Errorf("round trip = %+v", out)
	}
}

func TestBackendNameEnvOverride(t *testing.T) {
	t.Setenv(BackendEnv, " KDialog ")
	cfg := Config{Backend: "gtk"}
	if got := cfg.BackendName(); got != "kdialog" {
		t.Errorf("BackendName = %q, want kdialog", got)
	}
}

func TestBackendNameDefaultsToAuto(t *testing.T) {
	t.Setenv(BackendEnv, "")
	if got := (Config{}).BackendName(); got != "auto" {
		t.Errorf("BackendName = %q, want auto", got)
	}
}

func TestDefaultLogConfigWhenSectionAbsent(t *testing.T) {
	var cfg *Config
	if got := cfg.LoggingOrDefault(); got != DefaultLogConfig() {
		t.Errorf("nil config log defaults = %+v", got)
	}
}

func TestLoggingKeepsUnsetBooleans(t *testing.T) {
	off := false
	cfg := &Config{Logging: &LogSettings{Compress: &off}}
	got := cfg.LoggingOrDefault()
	if got.Compress || !got.ToStdout {
		t.Errorf("logging = %+v, want compress off and stdout on", got)
	}
}

func TestExcluded(t *testing.T) {
	cfg := Config{Exclude: []string{"GTK", " zenity "}}
	for name, want := range map[string]bool{"gtk": true, "zenity": true, "kdialog": false} {
		if got := cfg.Excluded(name); got != want {
			t.Errorf("Excluded(%q) = %v, want %v", name, got, want)
		}
	}
	if (Config{}).Excluded("gtk") {
		t.Error("empty Exclude excluded something")
	}
}
