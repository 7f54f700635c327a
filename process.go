package msgdlg

import "sync"

var (
	processMu      sync.Mutex
	processService *Service
	processErr     error
)

// Init resolves the process-wide service. Only the first call after start
// or after Shutdown does any work; later calls return its result.
func Init(cfg Config, tracker WindowTracker) error {
	processMu.Lock()
	defer processMu.Unlock()
	if processService != nil || processErr != nil {
		return processErr
	}
	processService, processErr = NewService(cfg, tracker)
	return processErr
}

// Default returns the process-wide service, initialising it with
// DefaultConfig on first use. When the configured backend cannot be
// opened the headless stub serves instead.
func Default() *Service {
	processMu.Lock()
	defer processMu.Unlock()
	if processService == nil && processErr == nil {
		processService, processErr = NewService(DefaultConfig(), nil)
	}
	if processService == nil {
		logWarn("Dialog service unavailable (%v), using none", processErr)
		processService = NewServiceWithBackend(noneBackend{}, DefaultConfig(), nil)
	}
	return processService
}

// Shutdown closes the process-wide service and releases its native
// libraries. A later Init resolves a new one.
func Shutdown() error {
	processMu.Lock()
	defer processMu.Unlock()
	s := processService
	processService, processErr = nil, nil
	if s == nil {
		return nil
	}
	return s.Close()
}
