package msgdlg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"msgdlg/internal/dynlib"
)

// LogFileName is the log file created in ConfigDir by NewFileLogger.
const LogFileName = "msgdlg.log"

var log *logrus.Logger

// SetLogger routes library diagnostics to l. The library is silent until a
// logger is set; passing nil silences it again.
func SetLogger(l *logrus.Logger) {
	log = l
	dynlib.SetLogger(l)
}

// NewFileLogger builds a logger writing to a rotated file in ConfigDir,
// optionally teed to stdout.
func NewFileLogger(cfg LogConfig) (*logrus.Logger, error) {
	l := logrus.New()

	logDir := ConfigDir()
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, LogFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}

	if cfg.ToStdout {
		l.SetOutput(io.MultiWriter(lj, os.Stdout))
	} else {
		l.SetOutput(lj)
	}

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	l.SetLevel(logrus.InfoLevel)

	l.WithFields(logrus.Fields{
		"max_size_mb":  cfg.MaxSizeMB,
		"max_backups":  cfg.MaxBackups,
		"max_age_days": cfg.MaxAgeDays,
		"compress":     cfg.Compress,
		"to_stdout":    cfg.ToStdout,
	}).Info("Logger initialized")
	return l, nil
}

// SetLogLevel switches l between Debug and Info.
func SetLogLevel(l *logrus.Logger, debug bool) {
	if l == nil {
		return
	}
	if debug {
		l.SetLevel(logrus.DebugLevel)
		l.Debug("Debug logging enabled")
	} else {
		l.SetLevel(logrus.InfoLevel)
		l.Info("Debug logging disabled")
	}
}

// LogPath returns the path NewFileLogger writes to.
func LogPath() string {
	return filepath.Join(ConfigDir(), LogFileName)
}

func logDebug(format string, args ...interface{}) {
	if log != nil {
		log.Debugf(format, args...)
	}
}

func logInfo(format string, args ...interface{}) {
	if log != nil {
		log.Infof(format, args...)
	}
}

func logWarn(format string, args ...interface{}) {
	if log != nil {
		log.Warnf(format, args...)
	}
}

// logDialog records one finished dialog call.
func logDialog(backend string, d *Dialog, b Button, err error) {
	if log == nil {
		return
	}
	fields := logrus.Fields{
		"backend": backend,
		"kind":    d.Kind.String(),
		"topic":   d.Topic,
		"parent":  d.Parent.String(),
	}
	if err != nil {
		fields["error"] = err.Error()
		log.WithFields(fields).Error("Dialog failed")
		return
	}
	fields["button"] = b.String()
	log.WithFields(fields).Debug("Dialog closed")
}
