package dynlib

import (
	"errors"
	"runtime"
	"testing"
)

const missingLib = "libmsgdlg-definitely-not-installed.so.42"

func TestTryLoadMissingReturnsAbsent(t *testing.T) {
	if h := TryLoad(missingLib); h.Valid() {
		t.Fatalf("TryLoad(%q) = %#x, want absent handle", missingLib, uintptr(h))
	}
}

func TestLoadMissingReturnsDiagnostic(t *testing.T) {
	h, err := Load(missingLib)
	if err == nil {
		t.Fatalf("Load(%q) succeeded with handle %#x", missingLib, uintptr(h))
	}
	if h.Valid() {
		t.Errorf("Load returned a valid handle alongside an error")
	}

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Load error is %T, want *LoadError", err)
	}
	if le.Message == "" {
		t.Error("LoadError.Message is empty")
	}
	if le.Name != missingLib {
		t.Errorf("LoadError.Name = %q, want %q", le.Name, missingLib)
	}
	if le.Op != "load" {
		t.Errorf("LoadError.Op = %q, want load", le.Op)
	}
}

func TestUnloadAbsentHandle(t *testing.T) {
	if err := Unload(0); err != nil {
		t.Errorf("Unload(0) = %v, want nil", err)
	}
	// Must not panic.
	UnloadQuietly(0)
}

func TestSymbolOnAbsentHandle(t *testing.T) {
	if addr := Symbol(0, "strlen"); addr != 0 {
		t.Errorf("Symbol(0, strlen) = %#x, want 0", addr)
	}
}

func TestLoadErrorFormatting(t *testing.T) {
	tests := []struct {
		err  *LoadError
		want string
	}{
		{&LoadError{Op: "load", Name: "a.dll", Code: 126, Message: "not found"}, "dynlib: load a.dll: not found (code 126)"},
		{&LoadError{Op: "load", Name: "a.so", Message: "a.so: cannot open"}, "dynlib: load a.so: a.so: cannot open"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestOpenMissingCandidates(t *testing.T) {
	lib := Open(missingLib, missingLib+".1")
	if lib.Loaded() {
		t.Fatal("Open reported a loaded library for missing candidates")
	}
	if lib.Name() != "" {
		t.Errorf("Name() = %q, want empty", lib.Name())
	}
	if lib.Symbol("anything") != 0 {
		t.Error("Symbol on unloaded library returned an address")
	}
	if err := lib.Close(); err != nil {
		t.Errorf("Close on unloaded library = %v", err)
	}
}

func TestOpenSystemLibrary(t *testing.T) {
	var names []string
	var symbol string
	switch runtime.GOOS {
	case "linux":
		names, symbol = []string{"libc.so.6", "libc.so"}, "strlen"
	case "darwin":
		names, symbol = []string{"/usr/lib/libSystem.B.dylib"}, "strlen"
	case "windows":
		names, symbol = []string{"kernel32.dll"}, "GetCurrentProcessId"
	default:
		t.Skipf("no system library known for %s", runtime.GOOS)
	}

	lib := Open(append([]string{missingLib}, names...)...)
	if !lib.Loaded() {
		t.Skipf("none of %v could be loaded here", names)
	}
	if lib.Name() == missingLib {
		t.Fatalf("Open kept the missing candidate")
	}
	if lib.Symbol(symbol) == 0 {
		t.Errorf("Symbol(%q) = 0 in %s", symbol, lib.Name())
	}
	if lib.Symbol("msgdlg_no_such_symbol") != 0 {
		t.Error("Symbol for a missing name returned an address")
	}
	if err := lib.Close(); err != nil {
		t.Fatalf("first Close = %v", err)
	}
	if err := lib.Close(); err != nil {
		t.Errorf("second Close = %v, want no-op", err)
	}
	if lib.Loaded() {
		t.Error("library still loaded after Close")
	}
}
