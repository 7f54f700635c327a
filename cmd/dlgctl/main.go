// Command dlgctl shows one dialog and prints the outcome as JSON, or runs
// a Lua dialog script.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"msgdlg"
	"msgdlg/internal/output"
	"msgdlg/internal/script"
	"msgdlg/internal/version"
)

// Exit codes, zenity style.
const (
	exitAccepted = 0
	exitDeclined = 1
	exitUsage    = 2
	exitFailed   = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	kind         string
	topic        string
	heading      string
	message      string
	choices      string
	delayMs      int
	backend      string
	configPath   string
	query        string
	raw          bool
	scriptPath   string
	debug        bool
	logFile      bool
	listBackends bool
	showVersion  bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("dlgctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.kind, "kind", "inform", "dialog kind: inform, warn, complain, yes-no, ok-cancel, yes-no-cancel, choices, confirm, cancellable")
	fs.StringVar(&o.topic, "topic", "dlgctl", "window title")
	fs.StringVar(&o.heading, "heading", "", "bold lead line")
	fs.StringVar(&o.message, "message", "", "body text")
	fs.StringVar(&o.choices, "choices", "", "comma separated labels for -kind choices")
	fs.IntVar(&o.delayMs, "delay", -1, "delay in ms for confirm and cancellable, -1 for the configured default")
	fs.StringVar(&o.backend, "backend", "", "backend name, overrides the config file")
	fs.StringVar(&o.configPath, "config", "", "config file (default "+msgdlg.DefaultConfigPath()+")")
	fs.StringVar(&o.query, "query", "", "jq expression applied to the JSON outcome")
	fs.BoolVar(&o.raw, "raw", false, "print string query results without quotes")
	fs.StringVar(&o.scriptPath, "script", "", "run a Lua dialog script instead of one dialog")
	fs.BoolVar(&o.debug, "debug", false, "debug logging on stderr")
	fs.BoolVar(&o.logFile, "log", false, "also log to "+msgdlg.LogPath())
	fs.BoolVar(&o.listBackends, "list-backends", false, "list compiled in backends and exit")
	fs.BoolVar(&o.showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 && o.message == "" {
		o.message = strings.Join(fs.Args(), " ")
	}
	return o, nil
}

func newLogger(o *options, cfg *msgdlg.Config, stderr io.Writer) *logrus.Logger {
	if o.logFile {
		l, err := msgdlg.NewFileLogger(cfg.LoggingOrDefault())
		if err == nil {
			msgdlg.SetLogLevel(l, o.debug)
			return l
		}
		fmt.Fprintf(stderr, "Warning: Failed to initialize logger: %v\n", err)
	}
	l := logrus.New()
	l.SetOutput(stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	l.SetLevel(logrus.WarnLevel)
	if o.debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}
	if o.showVersion {
		fmt.Fprintf(stdout, "dlgctl %s\n", version.Version)
		return exitAccepted
	}
	if o.listBackends {
		for _, name := range msgdlg.Backends() {
			fmt.Fprintln(stdout, name)
		}
		return exitAccepted
	}

	cfg, err := msgdlg.LoadConfigOrDefault(o.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "dlgctl: config: %v\n", err)
		return exitUsage
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}

	l := newLogger(o, cfg, stderr)
	msgdlg.SetLogger(l)
	defer msgdlg.SetLogger(nil)

	if err := msgdlg.Init(*cfg, msgdlg.HostTracker()); err != nil {
		fmt.Fprintf(stderr, "dlgctl: %v\n", err)
		msgdlg.Shutdown()
		return exitFailed
	}
	defer msgdlg.Shutdown()
	svc := msgdlg.Default()

	if o.scriptPath != "" {
		return runScript(svc, l, o, stdout, stderr)
	}

	filter, err := output.NewFilter(o.query)
	if err != nil {
		fmt.Fprintf(stderr, "dlgctl: %v\n", err)
		return exitUsage
	}
	kind, err := msgdlg.ParseKind(o.kind)
	if err != nil {
		fmt.Fprintf(stderr, "dlgctl: %v\n", err)
		return exitUsage
	}

	out, accepted := showDialog(svc, kind, o)
	if err := output.Write(stdout, out, filter, o.raw); err != nil {
		fmt.Fprintf(stderr, "dlgctl: %v\n", err)
		return exitFailed
	}
	switch {
	case out.Error != "":
		return exitFailed
	case !accepted:
		return exitDeclined
	}
	return exitAccepted
}

func splitChoices(s string) []string {
	var labels []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			labels = append(labels, part)
		}
	}
	return labels
}

// showDialog runs one dialog and reports whether it was accepted.
func showDialog(svc *msgdlg.Service, kind msgdlg.Kind, o *options) (output.Outcome, bool) {
	out := output.Outcome{Backend: svc.Backend(), Kind: kind.String(), Topic: o.topic}
	req := output.Request{
		Kind:    kind,
		Topic:   o.topic,
		Heading: o.heading,
		Message: o.message,
		Delay:   msgdlg.DefaultDelay,
	}
	if kind == msgdlg.KindChoices {
		req.Choices = splitChoices(o.choices)
	}
	if o.delayMs >= 0 {
		req.Delay = time.Duration(o.delayMs) * time.Millisecond
	}

	start := time.Now()
	reply, err := output.Ask(svc, req)
	out.ElapsedMs = time.Since(start).Milliseconds()

	if err != nil {
		out.Error = err.Error()
		out.Answer = "error"
		return out, false
	}
	out.Answer, out.Value, out.Choice = reply.Answer, reply.Value, reply.Choice
	return out, reply.Accepted
}

func runScript(svc *msgdlg.Service, l *logrus.Logger, o *options, stdout, stderr io.Writer) int {
	engine := script.New(script.Host{
		Dialogs:   svc,
		SetStatus: func(text string) { l.Info(text) },
		Logger:    l,
	}, "")
	ctx := map[string]string{
		"topic":   o.topic,
		"heading": o.heading,
		"message": o.message,
		"backend": svc.Backend(),
	}
	result, err := engine.RunFile(o.scriptPath, ctx)
	if err != nil {
		fmt.Fprintf(stderr, "dlgctl: %v\n", err)
		return exitFailed
	}
	if result != "" {
		fmt.Fprintln(stdout, result)
	}
	return exitAccepted
}
