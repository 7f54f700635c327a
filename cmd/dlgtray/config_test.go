package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"msgdlg"
)

func TestLoadConfigInlinesDialogSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dlgtray.json")
	data := `{
		"backend": "zenity",
		"confirm_delay_ms": 1500,
		"entries": [
			{"index": 1, "name": "Ask", "kind": "yes-no"},
			{"index": 2, "name": "Wait", "kind": "cancellable", "delay_ms": 0},
			{"index": 3, "name": "Run", "script": "run.lua"}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "zenity" || cfg.ConfirmDelay() != 1500*time.Millisecond {
		t.Errorf("dialog settings = %+v", cfg.Config)
	}
	if cfg.Fallback != "none" {
		t.Errorf("fallback default lost: %q", cfg.Fallback)
	}
	if len(cfg.Entries) != 3 {
		t.Fatalf("entries = %v", cfg.Entries)
	}
	if d := cfg.Entries[0].Delay(); d != msgdlg.DefaultDelay {
		t.Errorf("absent delay = %v", d)
	}
	if d := cfg.Entries[1].Delay(); d != 0 {
		t.Errorf("explicit zero delay = %v", d)
	}
	if e, ok := cfg.EntryByIndex(3); !ok || e.Script != "run.lua" {
		t.Errorf("EntryByIndex(3) = %v, %v", e, ok)
	}
	if _, ok := cfg.EntryByIndex(9); ok {
		t.Error("EntryByIndex(9) found something")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		entries []DialogEntry
		want    string
	}{
		{[]DialogEntry{{Index: 1, Kind: "inform"}}, "no name"},
		{[]DialogEntry{{Index: 1, Name: "A", Kind: "popup"}}, "unknown dialog kind"},
		{[]DialogEntry{{Index: 1, Name: "A", Kind: "inform"}, {Index: 1, Name: "B", Kind: "warn"}}, "share index"},
		{[]DialogEntry{{Index: 1, Name: "A", Script: "x.lua"}}, ""},
	}
	for _, tt := range tests {
		cfg := &Config{Entries: tt.entries}
		err := cfg.Validate()
		switch {
		case tt.want == "" && err != nil:
			t.Errorf("%v: unexpected %v", tt.entries, err)
		case tt.want != "" && (err == nil || !strings.Contains(err.Error(), tt.want)):
			t.Errorf("%v: got %v, want %q", tt.entries, err, tt.want)
		}
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dlgtray.json")
	if err := CreateDefaultConfig(path); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Entries) == 0 {
		t.Error("default config has no entries")
	}

	// An existing file is left alone.
	if err := os.WriteFile(path, []byte(`{"entries": []}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := CreateDefaultConfig(path); err != nil {
		t.Fatal(err)
	}
	if cfg, _ = LoadConfig(path); len(cfg.Entries) != 0 {
		t.Error("existing config overwritten")
	}
}

func TestEntryTitle(t *testing.T) {
	if got := (DialogEntry{Name: "N"}).Title(); got != "N" {
		t.Errorf("Title() = %q", got)
	}
	if got := (DialogEntry{Name: "N", Topic: "T"}).Title(); got != "T" {
		t.Errorf("Title() = %q", got)
	}
}
