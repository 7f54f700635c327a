package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/getlantern/systray"

	"msgdlg"
	"msgdlg/internal/script"
	"msgdlg/internal/version"
)

var (
	commit    string
	buildDate string
)

var (
	// Global state
	stateMutex sync.RWMutex
	appConfig  *Config
	engine     *script.Engine
	lastResult string

	// Menu items
	mStatus      *systray.MenuItem
	mEntriesMenu *systray.MenuItem
	mKindsMenu   *systray.MenuItem
	mScriptsMenu *systray.MenuItem
	mCopyResult  *systray.MenuItem
	mDebug       *systray.MenuItem
	mReloadCfg   *systray.MenuItem
	mOpenCfg     *systray.MenuItem
	mOpenScripts *systray.MenuItem
	mBackend     *systray.MenuItem
	mQuit        *systray.MenuItem

	// Pooled submenu items and the data bound to them, reused across reloads
	entryMenuItems  []*systray.MenuItem
	scriptMenuItems []*systray.MenuItem
	entryItems      []DialogEntry
	scriptItems     []string
)

const maxMenuItems = 50 // Maximum items per menu type

func main() {
	if err := EnsureSingleInstance(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := LoadConfig("")
	if os.IsNotExist(err) {
		if createErr := CreateDefaultConfig(""); createErr == nil {
			cfg, err = LoadConfig("")
		}
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = &Config{Config: msgdlg.DefaultConfig()}
	}
	appConfig = cfg

	if err := InitLoggerWithConfig(cfg.LoggingOrDefault()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Failed to initialize logger: %v\n", err)
	}

	LogStartup()
	initDialogs(cfg)

	systray.Run(onReady, onExit)
}

// initDialogs (re)creates the process dialog service and the script
// engine bound to it.
func initDialogs(cfg *Config) {
	dcfg := cfg.Config
	dcfg.Exclude = append(append([]string(nil), dcfg.Exclude...), trayExcludes()...)

	if err := msgdlg.Shutdown(); err != nil {
		LogWarn("Closing dialog backend: %v", err)
	}
	if err := msgdlg.Init(dcfg, msgdlg.HostTracker()); err != nil {
		LogError("Dialog backend unavailable: %v", err)
	}
	svc := msgdlg.Default()

	e := script.New(script.Host{
		Dialogs:   svc,
		SetStatus: setStatus,
		Copy:      copyToClipboard,
		Logger:    log,
	}, cfg.ScriptsDir)
	if err := e.EnsureDir(); err != nil {
		LogWarn("%v", err)
	}

	stateMutex.Lock()
	engine = e
	stateMutex.Unlock()
}

func onReady() {
	systray.SetIcon(getIcon())
	systray.SetTitle("")
	systray.SetTooltip("Native dialog tester")

	// Status display as submenu (kept enabled for better contrast)
	mStatusMenu := systray.AddMenuItem("Status", "Current status")
	mStatus = mStatusMenu.AddSubMenuItem("Ready", "")

	systray.AddSeparator()

	mEntriesMenu = systray.AddMenuItem("Dialogs", "Configured dialogs")
	buildEntriesMenu()

	mKindsMenu = systray.AddMenuItem("Try Kind", "Show a sample of each dialog kind")
	buildKindsMenu()

	mScriptsMenu = systray.AddMenuItem("Scripts", "Run Lua dialog scripts")
	buildScriptsMenu()

	systray.AddSeparator()

	mCopyResult = systray.AddMenuItem("Copy Last Result", "Copy the last dialog answer to clipboard")
	mCopyResult.Disable()

	systray.AddSeparator()

	// Settings
	mDebug = systray.AddMenuItemCheckbox("Debug Mode", "Enable debug output", false)
	mReloadCfg = systray.AddMenuItem("Reload Config", "Reload configuration from file")
	mOpenCfg = systray.AddMenuItem("Open Config", DefaultConfigPath())
	mOpenScripts = systray.AddMenuItem("Open Scripts Folder", "")

	systray.AddSeparator()

	mHotkeys := systray.AddMenuItem("Hotkeys", "Keyboard shortcuts")
	_, desc := getEntryHotkeyModifiers()
	_ = mHotkeys.AddSubMenuItem(fmt.Sprintf("Dialogs: %s+[0-9]", desc), "Show the dialog with that index")

	systray.AddSeparator()

	// About submenu with version info (kept enabled for better contrast)
	mAbout := systray.AddMenuItem("About", "About dlgtray")
	_ = mAbout.AddSubMenuItem(fmt.Sprintf("Version: %s", version.Version), "")
	_ = mAbout.AddSubMenuItem(fmt.Sprintf("Commit: %s", getShortCommit()), "")
	_ = mAbout.AddSubMenuItem(fmt.Sprintf("Build: %s", buildDate), "")
	mBackend = mAbout.AddSubMenuItem("", "Dialog backend in use")
	updateBackendItem()

	systray.AddSeparator()

	mQuit = systray.AddMenuItem("Quit", "Quit the application")

	go handleMenuClicks()

	if cfg := currentConfig(); cfg == nil || !cfg.DisableHotkeys {
		InitHotkeys()
	}
}

func onExit() {
	LogShutdown()
	CleanupHotkeys()
	if err := msgdlg.Shutdown(); err != nil {
		LogWarn("Closing dialog backend: %v", err)
	}
	ReleaseSingleInstance()
}

func currentConfig() *Config {
	stateMutex.RLock()
	defer stateMutex.RUnlock()
	return appConfig
}

func currentEngine() *script.Engine {
	stateMutex.RLock()
	defer stateMutex.RUnlock()
	return engine
}

func setStatus(text string) {
	if mStatus != nil {
		mStatus.SetTitle(text)
	}
}

func updateBackendItem() {
	if mBackend != nil {
		mBackend.SetTitle(fmt.Sprintf("Backend: %s", msgdlg.Default().Backend()))
	}
}

func buildEntriesMenu() {
	entryMenuItems = make([]*systray.MenuItem, maxMenuItems)
	entryItems = make([]DialogEntry, maxMenuItems)

	for i := 0; i < maxMenuItems; i++ {
		item := mEntriesMenu.AddSubMenuItem("", "")
		item.Hide()
		entryMenuItems[i] = item
		go handleEntryClickByIndex(item, i)
	}

	mEntriesMenu.AddSubMenuItem("", "")
	configInfo := mEntriesMenu.AddSubMenuItem(fmt.Sprintf("Config: %s", DefaultConfigPath()), "Configuration file location")
	configInfo.Disable()

	updateEntriesMenu()
}

func updateEntriesMenu() {
	for i := 0; i < maxMenuItems; i++ {
		entryMenuItems[i].Hide()
	}

	cfg := currentConfig()
	if cfg == nil || len(cfg.Entries) == 0 {
		entryMenuItems[0].SetTitle("No dialogs configured")
		entryMenuItems[0].SetTooltip("Edit config file to add entries")
		entryMenuItems[0].Disable()
		entryMenuItems[0].Show()
		return
	}

	stateMutex.Lock()
	defer stateMutex.Unlock()
	for i, entry := range cfg.Entries {
		if i >= maxMenuItems {
			break
		}
		entryItems[i] = entry
		entryMenuItems[i].SetTitle(fmt.Sprintf("[%d] %s", entry.Index, entry.Name))
		if entry.Script != "" {
			entryMenuItems[i].SetTooltip("Script: " + entry.Script)
		} else {
			entryMenuItems[i].SetTooltip(entry.Kind)
		}
		entryMenuItems[i].Enable()
		entryMenuItems[i].Show()
	}
}

func handleEntryClickByIndex(item *systray.MenuItem, index int) {
	for range item.ClickedCh {
		stateMutex.RLock()
		entry := entryItems[index]
		stateMutex.RUnlock()
		if entry.Name != "" {
			executeEntry(entry)
		}
	}
}

// executeEntry runs the entry's script, or shows its dialog.
func executeEntry(entry DialogEntry) {
	if entry.Script != "" {
		runScript(entry.Script, map[string]string{
			"name":    entry.Name,
			"index":   fmt.Sprintf("%d", entry.Index),
			"kind":    entry.Kind,
			"topic":   entry.Title(),
			"heading": entry.Heading,
			"message": entry.Message,
		}, "entry")
		return
	}

	answer, err := runEntry(msgdlg.Default(), entry)
	LogDialogAnswered(entry.Name, entry.Kind, answer, err)
	if err != nil {
		setStatus(fmt.Sprintf("Dialog error: %s", truncateError(err)))
		return
	}
	setResult(entry.Name, answer)
}

// sampleKinds are shown by the "Try Kind" submenu.
var sampleKinds = []msgdlg.Kind{
	msgdlg.KindInform,
	msgdlg.KindWarn,
	msgdlg.KindComplain,
	msgdlg.KindYesNo,
	msgdlg.KindOkCancel,
	msgdlg.KindYesNoCancel,
	msgdlg.KindChoices,
	msgdlg.KindConfirm,
	msgdlg.KindCancellable,
}

func buildKindsMenu() {
	for _, kind := range sampleKinds {
		item := mKindsMenu.AddSubMenuItem(kind.String(), "")
		go handleKindClick(item, kind)
	}
}

func handleKindClick(item *systray.MenuItem, kind msgdlg.Kind) {
	for range item.ClickedCh {
		entry := sampleEntry(kind, msgdlg.Default().Backend())
		answer, err := runEntry(msgdlg.Default(), entry)
		LogDialogAnswered(entry.Name, entry.Kind, answer, err)
		if err != nil {
			setStatus(fmt.Sprintf("Dialog error: %s", truncateError(err)))
			continue
		}
		setResult(entry.Name, answer)
	}
}

// sampleEntry builds the demo dialog for kind.
func sampleEntry(kind msgdlg.Kind, backend string) DialogEntry {
	e := DialogEntry{
		Name:    "Sample " + kind.String(),
		Kind:    kind.String(),
		Topic:   "dlgtray",
		Heading: fmt.Sprintf("This is a %s dialog", kind),
		Message: fmt.Sprintf("Shown by the %s backend.", backend),
	}
	switch kind {
	case msgdlg.KindChoices:
		e.Choices = []string{"First", "Second", "Third"}
	case msgdlg.KindConfirm:
		e.Message += "\nOK is enabled after the confirmation delay."
	case msgdlg.KindCancellable:
		e.Message += "\nThe dialog accepts itself unless cancelled."
	}
	return e
}

func buildScriptsMenu() {
	scriptMenuItems = make([]*systray.MenuItem, maxMenuItems)
	scriptItems = make([]string, maxMenuItems)

	for i := 0; i < maxMenuItems; i++ {
		item := mScriptsMenu.AddSubMenuItem("", "")
		item.Hide()
		scriptMenuItems[i] = item
		go handleScriptClickByIndex(item, i)
	}

	updateScriptsMenu()
}

func updateScriptsMenu() int {
	for i := 0; i < maxMenuItems; i++ {
		scriptMenuItems[i].Hide()
	}

	var names []string
	if e := currentEngine(); e != nil {
		var err error
		if names, err = e.List(); err != nil {
			LogWarn("Listing scripts: %v", err)
		}
	}
	if len(names) == 0 {
		scriptMenuItems[0].SetTitle("No scripts found")
		scriptMenuItems[0].SetTooltip("Put .lua files in the scripts folder")
		scriptMenuItems[0].Disable()
		scriptMenuItems[0].Show()
		return 0
	}

	stateMutex.Lock()
	defer stateMutex.Unlock()
	for i, name := range names {
		if i >= maxMenuItems {
			break
		}
		scriptItems[i] = name
		scriptMenuItems[i].SetTitle(name)
		scriptMenuItems[i].SetTooltip("")
		scriptMenuItems[i].Enable()
		scriptMenuItems[i].Show()
	}
	return len(names)
}

func handleScriptClickByIndex(item *systray.MenuItem, index int) {
	for range item.ClickedCh {
		stateMutex.RLock()
		name := scriptItems[index]
		stateMutex.RUnlock()
		if name != "" {
			runScript(name, map[string]string{"name": name}, "menu")
		}
	}
}

func runScript(name string, ctx map[string]string, entryType string) {
	e := currentEngine()
	if e == nil {
		setStatus("Scripting unavailable")
		return
	}
	result, err := e.Run(name, ctx)
	LogScriptExecuted(name, entryType, err)
	if err != nil {
		setStatus(fmt.Sprintf("Script error: %s", truncateError(err)))
		return
	}
	if result != "" {
		setResult(name, result)
		return
	}
	setStatus(fmt.Sprintf("Script: %s", name))
}

func setResult(name, result string) {
	stateMutex.Lock()
	lastResult = result
	stateMutex.Unlock()

	setStatus(fmt.Sprintf("%s: %s", name, result))
	if mCopyResult != nil {
		mCopyResult.Enable()
	}
}

func handleMenuClicks() {
	for {
		select {
		case <-mCopyResult.ClickedCh:
			copyLastResult()

		case <-mDebug.ClickedCh:
			toggleDebug()

		case <-mReloadCfg.ClickedCh:
			reloadConfig()

		case <-mOpenCfg.ClickedCh:
			openAndReport(DefaultConfigPath())

		case <-mOpenScripts.ClickedCh:
			if e := currentEngine(); e != nil {
				openAndReport(e.Dir())
			}

		case <-mQuit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

func openAndReport(path string) {
	if err := openPath(path); err != nil {
		LogError("Failed to open %s: %v", path, err)
		setStatus(fmt.Sprintf("Open failed: %s", truncateError(err)))
		return
	}
	LogAction("opened", path)
}

func copyLastResult() {
	stateMutex.RLock()
	result := lastResult
	stateMutex.RUnlock()

	if result == "" {
		return
	}
	if err := copyToClipboard(result); err != nil {
		LogError("Failed to copy result: %v", err)
		setStatus(fmt.Sprintf("Copy failed: %v", truncateError(err)))
		return
	}
	LogClipboardCopy("last dialog result")
	setStatus("Copied result to clipboard")
}

func reloadConfig() {
	cfg, err := LoadConfig("")
	if err != nil {
		LogError("Config reload failed: %v", err)
		setStatus(fmt.Sprintf("Config error: %v", truncateError(err)))
		return
	}
	stateMutex.Lock()
	appConfig = cfg
	stateMutex.Unlock()

	initDialogs(cfg)
	updateEntriesMenu()
	scripts := updateScriptsMenu()
	updateBackendItem()

	LogConfigLoaded(len(cfg.Entries), scripts)
	setStatus(fmt.Sprintf("Config reloaded (%d dialogs, %d scripts)", len(cfg.Entries), scripts))
}

func toggleDebug() {
	if debugMode {
		mDebug.Uncheck()
	} else {
		mDebug.Check()
	}
	SetDebugMode(!debugMode)
}

func truncateError(err error) string {
	s := err.Error()
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}

// getIcon returns the tray icon bytes
func getIcon() []byte {
	return defaultIcon
}

// getShortCommit returns the first 8 characters of the commit hash
func getShortCommit() string {
	if len(commit) >= 8 {
		return commit[:8]
	}
	if commit == "" {
		return "dev"
	}
	return commit
}

// Platform-specific clipboard implementation
func copyToClipboard(text string) error {
	return copyToClipboardPlatform(text)
}
