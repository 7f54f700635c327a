// Package dynlib looks up and loads optional shared libraries at runtime.
//
// Missing optional libraries are an expected outcome: TryLoad reports them
// as the zero Handle and never fails. Load is for libraries the caller
// requires and returns a *LoadError with the OS diagnostic attached.
package dynlib

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Handle is an opaque reference to a loaded library. The zero value means
// "not loaded".
type Handle uintptr

// Valid reports whether the handle refers to a loaded library.
func (h Handle) Valid() bool {
	return h != 0
}

// LoadError describes a failed required load or a failed unload.
type LoadError struct {
	Op      string // "load" or "unload"
	Name    string // library name as given by the caller
	Code    int    // OS error code, 0 when the platform only reports text
	Message string // OS diagnostic text
}

func (e *LoadError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("dynlib: %s %s: %s (code %d)", e.Op, e.Name, e.Message, e.Code)
	}
	return fmt.Sprintf("dynlib: %s %s: %s", e.Op, e.Name, e.Message)
}

var log *logrus.Logger

// SetLogger sets the logger used for library lookup diagnostics. A nil logger
// silences the package.
func SetLogger(l *logrus.Logger) {
	log = l
}

func logDebug(format string, args ...interface{}) {
	if log != nil {
		log.Debugf(format, args...)
	}
}

// TryLoad attempts to load an optional library with lazy binding and local
// symbol visibility. Any failure yields the zero Handle.
func TryLoad(name string) Handle {
	h, err := platformOpen(name)
	if err != nil {
		logDebug("dynlib: optional library %s not loaded: %v", name, err)
		return 0
	}
	logDebug("dynlib: loaded optional library %s", name)
	return h
}

// Load loads a library the caller requires to exist.
func Load(name string) (Handle, error) {
	h, err := platformOpen(name)
	if err != nil {
		return 0, newLoadError("load", name, err)
	}
	return h, nil
}

// Unload releases a handle obtained from TryLoad or Load. Unloading the
// zero Handle is a no-op.
func Unload(h Handle) error {
	if !h.Valid() {
		return nil
	}
	if err := platformClose(h); err != nil {
		return newLoadError("unload", fmt.Sprintf("handle %#x", uintptr(h)), err)
	}
	return nil
}

// UnloadQuietly releases h and discards any failure. Safe on teardown paths.
func UnloadQuietly(h Handle) {
	if !h.Valid() {
		return
	}
	if err := platformClose(h); err != nil {
		logDebug("dynlib: ignored unload failure for %#x: %v", uintptr(h), err)
	}
}

// Symbol resolves name inside h. It returns 0 when the handle is absent or
// the symbol does not exist. The caller owns the call signature.
func Symbol(h Handle, name string) uintptr {
	if !h.Valid() {
		return 0
	}
	addr, err := platformSym(h, name)
	if err != nil {
		logDebug("dynlib: symbol %s not found: %v", name, err)
		return 0
	}
	return addr
}

// Library owns at most one loaded handle and releases it exactly once.
type Library struct {
	mu     sync.Mutex
	name   string
	handle Handle
}

// Open tries candidate names in order and keeps the first that loads.
// The returned Library is never nil; check Loaded.
func Open(names ...string) *Library {
	for _, name := range names {
		if h := TryLoad(name); h.Valid() {
			return &Library{name: name, handle: h}
		}
	}
	return &Library{}
}

// Loaded reports whether one of the candidates was found.
func (l *Library) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handle.Valid()
}

// Name returns the candidate name that was loaded, or "".
func (l *Library) Name() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.name
}

// Handle returns the underlying handle, or the zero Handle.
func (l *Library) Handle() Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handle
}

// Symbol resolves name in the loaded library.
func (l *Library) Symbol(name string) uintptr {
	return Symbol(l.Handle(), name)
}

// Close releases the library. Later calls are no-ops.
func (l *Library) Close() error {
	l.mu.Lock()
	h := l.handle
	l.handle = 0
	l.mu.Unlock()
	return Unload(h)
}
