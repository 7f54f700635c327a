package msgdlg

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"msgdlg/internal/toolpath"
)

// openEnv is what a backend opener may consult.
type openEnv struct {
	tools    *toolpath.Resolver
	runner   commandRunner
	stdin    io.Reader
	stdout   io.Writer
	interval time.Duration
}

type opener func(env openEnv) (Backend, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]opener)
)

func registerBackend(name string, open opener) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = open
}

func lookupBackend(name string) (opener, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	open, ok := registry[name]
	return open, ok
}

// Backends lists the backend names compiled into this binary.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newOpenEnv(cfg Config) openEnv {
	return openEnv{
		tools:    toolpath.New(cfg.ToolCacheTTL()),
		runner:   execRunner{},
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		interval: cfg.TimerInterval(),
	}
}

// Resolve opens the backend cfg asks for. An explicit name must open or
// Resolve fails; "auto" walks the platform candidates and always ends at
// the configured fallback, so it never fails for lack of a GUI.
func Resolve(cfg Config) (Backend, error) {
	return resolveWith(cfg, newOpenEnv(cfg), platformCandidates())
}

func resolveWith(cfg Config, env openEnv, candidates []string) (Backend, error) {
	name := cfg.BackendName()
	if name != "auto" {
		open, ok := lookupBackend(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
		}
		b, err := open(env)
		if err != nil {
			return nil, fmt.Errorf("backend %s: %w", name, err)
		}
		return b, nil
	}

	for _, cand := range candidates {
		open, ok := lookupBackend(cand)
		if !ok || cfg.Excluded(cand) {
			continue
		}
		b, err := open(env)
		if err != nil {
			logDebug("Dialog backend %s skipped: %v", cand, err)
			continue
		}
		return b, nil
	}

	fallback := cfg.FallbackName()
	open, ok := lookupBackend(fallback)
	if !ok {
		logWarn("Unknown fallback backend %q, using none", fallback)
		return noneBackend{}, nil
	}
	b, err := open(env)
	if err != nil {
		logWarn("Fallback backend %s failed: %v, using none", fallback, err)
		return noneBackend{}, nil
	}
	return b, nil
}
