package main

import (
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"msgdlg"
	"msgdlg/internal/version"
)

var (
	log       *logrus.Logger
	debugMode bool
)

// InitLoggerWithConfig builds the rotated file logger and shares it with
// the dialog library, so backend messages land in the same file.
func InitLoggerWithConfig(cfg msgdlg.LogConfig) error {
	l, err := msgdlg.NewFileLogger(cfg)
	if err != nil {
		return err
	}
	log = l
	msgdlg.SetLogger(l)
	return nil
}

// SetDebugMode switches debug output on or off.
func SetDebugMode(debug bool) {
	debugMode = debug
	msgdlg.SetLogLevel(log, debug)
}

// trayLog tags tray messages apart from the library's. Nil before the
// logger is set up; every helper below checks.
func trayLog(fields logrus.Fields) *logrus.Entry {
	if log == nil {
		return nil
	}
	e := log.WithField("component", "tray")
	if len(fields) > 0 {
		e = e.WithFields(fields)
	}
	return e
}

func LogDebug(format string, args ...interface{}) {
	if e := trayLog(nil); e != nil {
		e.Debugf(format, args...)
	}
}

func LogWarn(format string, args ...interface{}) {
	if e := trayLog(nil); e != nil {
		e.Warnf(format, args...)
	}
}

func LogError(format string, args ...interface{}) {
	if e := trayLog(nil); e != nil {
		e.Errorf(format, args...)
	}
}

// LogAction records something the user did from the menu.
func LogAction(action, details string) {
	if e := trayLog(logrus.Fields{"action": action}); e != nil {
		e.Info(details)
	}
}

func LogStartup() {
	e := trayLog(logrus.Fields{
		"version": version.Version,
		"commit":  getShortCommit(),
		"os":      runtime.GOOS,
		"arch":    runtime.GOARCH,
		"pid":     os.Getpid(),
	})
	if e != nil {
		e.Info("dlgtray starting")
	}
}

func LogShutdown() {
	if e := trayLog(nil); e != nil {
		e.Info("dlgtray shutting down")
	}
}

func LogConfigLoaded(entries, scripts int) {
	if e := trayLog(logrus.Fields{"entries": entries, "scripts": scripts}); e != nil {
		e.Info("Configuration loaded")
	}
}

// LogDialogAnswered records the answer to a tray dialog, or why it failed.
func LogDialogAnswered(name, kind, answer string, err error) {
	e := trayLog(logrus.Fields{"action": "dialog", "entry": name, "kind": kind})
	switch {
	case e == nil:
	case err != nil:
		e.WithError(err).Warn("Dialog failed")
	default:
		e.WithField("answer", answer).Info("Dialog answered")
	}
}

// LogClipboardCopy never logs the copied text itself.
func LogClipboardCopy(what string) {
	LogAction("clipboard_copy", "Copied "+what)
}

func LogScriptExecuted(name, entryType string, err error) {
	e := trayLog(logrus.Fields{"action": "script_executed", "script": name, "entry_type": entryType})
	switch {
	case e == nil:
	case err != nil:
		e.WithError(err).Warn("Script failed")
	default:
		e.Info("Script executed")
	}
}

func LogHotkeyTriggered(index int) {
	LogDebug("Hotkey triggered: index=%d", index)
}
