// Package script runs Lua dialog scripts. Scripts see a `dlg` module whose
// functions open dialogs through a msgdlg.Extended, a `ctx` table of
// caller supplied strings, and may leave an answer in the global `result`.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"

	"msgdlg"
)

// Host is what scripts can reach outside the Lua state.
type Host struct {
	Dialogs   msgdlg.Extended
	SetStatus func(text string)        // optional
	Copy      func(text string) error // optional
	Logger    *logrus.Logger          // optional
}

// Engine runs scripts from one directory, each in a fresh Lua state.
type Engine struct {
	host Host
	dir  string
}

// DefaultDir is where the tray and dlgctl look for scripts.
func DefaultDir() string {
	return filepath.Join(msgdlg.ConfigDir(), "scripts")
}

// New creates an engine for dir. An empty dir uses DefaultDir.
func New(host Host, dir string) *Engine {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Engine{host: host, dir: dir}
}

// Dir returns the scripts directory.
func (e *Engine) Dir() string {
	return e.dir
}

// EnsureDir creates the scripts directory if it does not exist.
func (e *Engine) EnsureDir() error {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}
	return nil
}

// Path returns the full path for a script filename.
func (e *Engine) Path(name string) string {
	return filepath.Join(e.dir, name)
}

// List returns the .lua files in the scripts directory, sorted.
func (e *Engine) List() ([]string, error) {
	entries, err := os.ReadDir(e.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, ent := range entries {
		if !ent.IsDir() && strings.HasSuffix(ent.Name(), ".lua") {
			names = append(names, ent.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Run executes the named script from the scripts directory.
func (e *Engine) Run(name string, ctx map[string]string) (string, error) {
	return e.RunFile(e.Path(name), ctx)
}

// RunFile executes a script file and returns the string form of `result`.
func (e *Engine) RunFile(path string, ctx map[string]string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("script not found: %s", path)
	}
	return e.run(ctx, func(L *lua.LState) error { return L.DoFile(path) })
}

// RunString executes Lua source.
func (e *Engine) RunString(src string, ctx map[string]string) (string, error) {
	return e.run(ctx, func(L *lua.LState) error { return L.DoString(src) })
}

func (e *Engine) run(ctx map[string]string, do func(*lua.LState) error) (string, error) {
	L := lua.NewState()
	defer L.Close()

	e.register(L)

	c := L.NewTable()
	for k, v := range ctx {
		L.SetField(c, k, lua.LString(v))
	}
	L.SetGlobal("ctx", c)
	L.SetGlobal("result", lua.LNil)

	if err := do(L); err != nil {
		return "", fmt.Errorf("script error: %w", err)
	}

	if result := L.GetGlobal("result"); result != lua.LNil {
		return result.String(), nil
	}
	return "", nil
}

func (e *Engine) register(L *lua.LState) {
	dlg := L.NewTable()
	fns := map[string]lua.LGFunction{
		"inform":               e.notify((msgdlg.Extended).Inform),
		"warn":                 e.notify((msgdlg.Extended).Warn),
		"complain":             e.notify((msgdlg.Extended).Complain),
		"ask_yes_no":           e.question((msgdlg.Extended).AskYesNo),
		"ask_ok_cancel":        e.question((msgdlg.Extended).AskOkCancel),
		"ask_yes_no_cancel":    e.askYesNoCancel,
		"give_choices":         e.giveChoices,
		"request_confirmation": e.timed((msgdlg.Extended).RequestConfirmation),
		"offer_cancellation":   e.timed((msgdlg.Extended).OfferCancellation),
		"set_status":           e.setStatus,
		"copy":                 e.copy,
		"sleep":                luaSleep,
		"env":                  luaEnv,
		"log":                  e.log,
	}
	for name, fn := range fns {
		L.SetField(dlg, name, L.NewFunction(fn))
	}
	L.SetGlobal("dlg", dlg)
}

func texts(L *lua.LState) (topic, heading, message string) {
	return L.CheckString(1), L.OptString(2, ""), L.OptString(3, "")
}

func pushError(L *lua.LState, err error) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(err.Error()))
	return 2
}

// notify wraps inform/warn/complain: dlg.inform(topic, heading, message) -> true
func (e *Engine) notify(fn func(msgdlg.Extended, string, string, string) error) lua.LGFunction {
	return func(L *lua.LState) int {
		topic, heading, message := texts(L)
		if err := fn(e.host.Dialogs, topic, heading, message); err != nil {
			return pushError(L, err)
		}
		L.Push(lua.LTrue)
		return 1
	}
}

// question wraps the boolean questions: dlg.ask_yes_no(topic, heading, message) -> bool
func (e *Engine) question(fn func(msgdlg.Extended, string, string, string) (bool, error)) lua.LGFunction {
	return func(L *lua.LState) int {
		topic, heading, message := texts(L)
		ok, err := fn(e.host.Dialogs, topic, heading, message)
		if err != nil {
			return pushError(L, err)
		}
		L.Push(lua.LBool(ok))
		return 1
	}
}

// askYesNoCancel: dlg.ask_yes_no_cancel(topic, heading, message) -> true|false|nil
func (e *Engine) askYesNoCancel(L *lua.LState) int {
	topic, heading, message := texts(L)
	a, err := e.host.Dialogs.AskYesNoCancel(topic, heading, message)
	if err != nil {
		return pushError(L, err)
	}
	if v, ok := a.Bool(); ok {
		L.Push(lua.LBool(v))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}

// giveChoices: dlg.give_choices(topic, heading, message, {labels}) -> index, label | nil
// The index is 1-based like every Lua sequence.
func (e *Engine) giveChoices(L *lua.LState) int {
	topic, heading, message := texts(L)
	tbl := L.CheckTable(4)
	var labels []string
	for i := 1; i <= tbl.Len(); i++ {
		labels = append(labels, tbl.RawGetInt(i).String())
	}
	i, ok, err := e.host.Dialogs.GiveChoices(topic, heading, message, labels)
	if err != nil {
		return pushError(L, err)
	}
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(i + 1))
	L.Push(lua.LString(labels[i]))
	return 2
}

// timed wraps the delayed kinds: dlg.offer_cancellation(topic, heading, message, delay_ms) -> bool
// A missing delay uses the configured default.
func (e *Engine) timed(fn func(msgdlg.Extended, string, string, string, time.Duration) (bool, error)) lua.LGFunction {
	return func(L *lua.LState) int {
		topic, heading, message := texts(L)
		delay := msgdlg.DefaultDelay
		if L.GetTop() >= 4 && L.Get(4) != lua.LNil {
			delay = time.Duration(L.CheckInt(4)) * time.Millisecond
		}
		ok, err := fn(e.host.Dialogs, topic, heading, message, delay)
		if err != nil {
			return pushError(L, err)
		}
		L.Push(lua.LBool(ok))
		return 1
	}
}

// setStatus sets the host status line: dlg.set_status(text)
func (e *Engine) setStatus(L *lua.LState) int {
	text := L.CheckString(1)
	if e.host.SetStatus != nil {
		e.host.SetStatus(text)
	}
	return 0
}

// copy copies text to the clipboard: dlg.copy(text) -> true | false, err
func (e *Engine) copy(L *lua.LState) int {
	text := L.CheckString(1)
	if e.host.Copy == nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString("clipboard not available"))
		return 2
	}
	if err := e.host.Copy(text); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

// luaSleep pauses execution: dlg.sleep(milliseconds)
func luaSleep(L *lua.LState) int {
	ms := L.CheckInt(1)
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return 0
}

// luaEnv gets an environment variable: dlg.env(name) -> value
func luaEnv(L *lua.LState) int {
	L.Push(lua.LString(os.Getenv(L.CheckString(1))))
	return 1
}

// log writes to the host log at debug level: dlg.log(message)
func (e *Engine) log(L *lua.LState) int {
	message := L.CheckString(1)
	if e.host.Logger != nil {
		e.host.Logger.WithField("source", "lua").Debug(message)
	}
	return 0
}
