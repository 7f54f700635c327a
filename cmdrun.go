package msgdlg

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// runResult is what a dialog tool left behind.
type runResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool // the deadline expired and the tool was killed
}

// commandRunner runs an external dialog tool to completion.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (runResult, error)
}

type execRunner struct{}

// Run returns an error only when the tool could not be run at all; a
// non-zero exit status is reported in the result.
func (execRunner) Run(ctx context.Context, name string, args ...string) (runResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := runResult{
		Stdout: strings.TrimRight(stdout.String(), "\r\n"),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if ctx.Err() == context.DeadlineExceeded {
		res.TimedOut = true
		res.ExitCode = -1
		return res, nil
	}
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			res.ExitCode = ee.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// runTool runs a tool with an optional deadline; deadline <= 0 waits for
// the user indefinitely.
func runTool(r commandRunner, deadline time.Duration, name string, args ...string) (runResult, error) {
	ctx := context.Background()
	if deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}
	return r.Run(ctx, name, args...)
}

// toolError wraps an unexpected tool exit as a NativeError.
func toolError(backend, tool string, res runResult, err error) *NativeError {
	ne := &NativeError{Backend: backend, Op: tool, Code: res.ExitCode, Err: err}
	switch {
	case err != nil:
		ne.Message = err.Error()
	case res.Stderr != "":
		ne.Message = res.Stderr
	default:
		ne.Message = "unexpected exit status"
	}
	return ne
}

// attachArg formats a parent window id the way zenity and kdialog parse it.
func attachArg(w Window) (string, bool) {
	h, ok := w.Handle()
	if !ok {
		return "", false
	}
	return "0x" + strconv.FormatUint(uint64(h), 16), true
}
