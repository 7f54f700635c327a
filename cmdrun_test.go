package msgdlg

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type runCall struct {
	name     string
	args     []string
	deadline bool
}

// fakeRunner returns canned results and records each invocation.
type fakeRunner struct {
	results []runResult
	err     error
	calls   []runCall
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (runResult, error) {
	_, hasDeadline := ctx.Deadline()
	f.calls = append(f.calls, runCall{name: name, args: args, deadline: hasDeadline})
	if f.err != nil {
		return runResult{}, f.err
	}
	if len(f.results) == 0 {
		return runResult{}, nil
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r, nil
}

func TestRunToolDeadline(t *testing.T) {
	r := &fakeRunner{}
	runTool(r, 0, "zenity")
	runTool(r, time.Second, "zenity")
	if r.calls[0].deadline {
		t.Error("zero deadline set a context deadline")
	}
	if !r.calls[1].deadline {
		t.Error("deadline not set")
	}
}

func TestToolError(t *testing.T) {
	ne := toolError("zenity", "zenity", runResult{ExitCode: 255, Stderr: "cannot open display"}, nil)
	if ne.Code != 255 || ne.Message != "cannot open display" {
		t.Errorf("got %+v", ne)
	}
	cause := errors.New("exec: not found")
	ne = toolError("zenity", "zenity", runResult{}, cause)
	if !errors.Is(ne, cause) {
		t.Error("cause not wrapped")
	}
	ne = toolError("kdialog", "kdialog", runResult{ExitCode: 9}, nil)
	if ne.Message == "" {
		t.Error("empty message")
	}
}

func TestAttachArg(t *testing.T) {
	if _, ok := attachArg(NoWindow); ok {
		t.Error("absent window produced an argument")
	}
	if got, _ := attachArg(WindowHandle(0x3a00007)); got != "0x3a00007" {
		t.Errorf("got %s", got)
	}
}

func TestExecRunnerExitCode(t *testing.T) {
	res, err := execRunner{}.Run(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 3")
	if err != nil {
		t.Skipf("sh not available: %v", err)
	}
	if res.ExitCode != 3 || res.Stdout != "out" || res.Stderr != "err" {
		t.Errorf("got %+v", res)
	}
}

func TestExecRunnerTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	res, err := execRunner{}.Run(ctx, "sleep", "5")
	if err != nil {
		t.Skipf("sleep not available: %v", err)
	}
	if !res.TimedOut {
		t.Errorf("got %+v, want timed out", res)
	}
}

func TestExecRunnerMissingTool(t *testing.T) {
	_, err := execRunner{}.Run(context.Background(), "/nonexistent/dialog-tool")
	if err == nil {
		t.Error("missing tool did not return an error")
	}
}

func hasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func argsString(args []string) string {
	return strings.Join(args, " ")
}
