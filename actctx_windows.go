//go:build windows

package msgdlg

import (
	"fmt"
	"path/filepath"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"msgdlg/internal/dynlib"
)

// shell32.dll carries the Common Controls v6 dependency as manifest
// resource 124. Activating it lets a process without its own manifest
// load comctl32 v6.
const shell32ManifestResource = 124

const (
	actctxFlagAssemblyDirectoryValid = 0x004
	actctxFlagResourceNameValid      = 0x008
)

// actCtxW mirrors ACTCTXW.
type actCtxW struct {
	Size                  uint32
	Flags                 uint32
	Source                *uint16
	ProcessorArchitecture uint16
	LangID                uint16
	AssemblyDirectory     *uint16
	ResourceName          uintptr
	ApplicationName       *uint16
	Module                windows.Handle
}

// activationContext is a comctl32 v6 activation context. Contexts are
// per thread, so it is only ever active inside with.
type activationContext struct {
	kernel32   *dynlib.Library
	handle     uintptr
	activate   uintptr
	deactivate uintptr
	release    uintptr
}

func newComctl6Context() (*activationContext, error) {
	kernel32 := dynlib.Open("kernel32.dll")
	c := &activationContext{
		kernel32:   kernel32,
		activate:   kernel32.Symbol("ActivateActCtx"),
		deactivate: kernel32.Symbol("DeactivateActCtx"),
		release:    kernel32.Symbol("ReleaseActCtx"),
	}
	create := kernel32.Symbol("CreateActCtxW")
	if create == 0 || c.activate == 0 || c.deactivate == 0 || c.release == 0 {
		kernel32.Close()
		return nil, fmt.Errorf("kernel32 lacks the activation context API")
	}

	dir, err := windows.GetSystemDirectory()
	if err != nil {
		kernel32.Close()
		return nil, fmt.Errorf("system directory: %w", err)
	}
	source, err := windows.UTF16PtrFromString(filepath.Join(dir, "shell32.dll"))
	if err != nil {
		kernel32.Close()
		return nil, err
	}
	assemblyDir, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		kernel32.Close()
		return nil, err
	}

	ctx := actCtxW{
		Flags:             actctxFlagAssemblyDirectoryValid | actctxFlagResourceNameValid,
		Source:            source,
		AssemblyDirectory: assemblyDir,
		ResourceName:      shell32ManifestResource,
	}
	ctx.Size = uint32(unsafe.Sizeof(ctx))
	h, _, e := syscall.SyscallN(create, uintptr(unsafe.Pointer(&ctx)))
	runtime.KeepAlive(source)
	runtime.KeepAlive(assemblyDir)
	if windows.Handle(h) == windows.InvalidHandle {
		kernel32.Close()
		return nil, fmt.Errorf("CreateActCtxW: %w", e)
	}
	c.handle = h
	return c, nil
}

// with runs fn on a locked OS thread with the context active. A nil
// context only locks the thread.
func (c *activationContext) with(fn func()) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if c == nil {
		fn()
		return nil
	}
	var cookie uintptr
	if r, _, e := syscall.SyscallN(c.activate, c.handle, uintptr(unsafe.Pointer(&cookie))); r == 0 {
		return fmt.Errorf("ActivateActCtx: %w", e)
	}
	defer syscall.SyscallN(c.deactivate, 0, cookie)
	fn()
	return nil
}

func (c *activationContext) Close() {
	if c == nil {
		return
	}
	syscall.SyscallN(c.release, c.handle)
	c.kernel32.Close()
}
