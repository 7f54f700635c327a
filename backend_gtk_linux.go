//go:build linux && (amd64 || arm64)

package msgdlg

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/ebitengine/purego"

	"msgdlg/internal/dynlib"
)

const (
	gtkOrientationHorizontal = 0
	gtkOrientationVertical   = 1
	gtkAlignStart            = 1
	gtkIconSizeDialog        = 6
	gtkWinPosCenter          = 1
	gtkWinPosCenterOnParent  = 4
	pangoWeightBold          = 700
)

// gtkAPI holds the GTK 3 entry points the backend calls. GDK, GLib and
// Pango symbols resolve through libgtk's dependencies.
type gtkAPI struct {
	initCheck              func(argc, argv uintptr) bool
	dialogNew              func() uintptr
	dialogAddButton        func(dialog uintptr, text string, response int32) uintptr
	dialogSetDefault       func(dialog uintptr, response int32)
	dialogSetSensitive     func(dialog uintptr, response int32, sensitive bool)
	dialogResponse         func(dialog uintptr, response int32)
	dialogGetContentArea   func(dialog uintptr) uintptr
	dialogRun              func(dialog uintptr) int32
	windowSetTitle         func(window uintptr, title string)
	windowSetModal         func(window uintptr, modal bool)
	windowSetKeepAbove     func(window uintptr, above bool)
	windowSetPosition      func(window uintptr, pos int32)
	windowSetResizable     func(window uintptr, resizable bool)
	containerSetBorder     func(container uintptr, width uint32)
	boxNew                 func(orientation, spacing int32) uintptr
	boxPackStart           func(box, child uintptr, expand, fill bool, padding uint32)
	labelNew               func(text string) uintptr
	labelSetLineWrap       func(label uintptr, wrap bool)
	labelSetMaxWidthChars  func(label uintptr, chars int32)
	labelSetAttributes     func(label, attrs uintptr)
	buttonNewWithLabel     func(label string) uintptr
	buttonSetLabel         func(button uintptr, label string)
	imageNewFromIconName   func(name string, size int32) uintptr
	widgetSetHalign        func(widget uintptr, align int32)
	widgetSetValign        func(widget uintptr, align int32)
	widgetShowAll          func(widget uintptr)
	widgetRealize          func(widget uintptr)
	widgetGetWindow        func(widget uintptr) uintptr
	widgetGetToplevel      func(widget uintptr) uintptr
	widgetDestroy          func(widget uintptr)
	eventsPending          func() bool
	mainIterationDo        func(blocking bool) bool
	signalConnectData      func(instance uintptr, signal string, handler, data, destroy uintptr, flags int32) uint64
	timeoutAdd             func(interval uint32, fn, data uintptr) uint32
	sourceRemove           func(id uint32) bool
	attrListNew            func() uintptr
	attrListInsert         func(list, attr uintptr)
	attrListUnref          func(list uintptr)
	attrWeightNew          func(weight int32) uintptr
	displayGetDefault      func() uintptr
	x11DisplayGetType      func() uintptr
	typeCheckInstanceIsA   func(instance, typ uintptr) bool
	x11ForeignWindow       func(display, xid uintptr) uintptr
	windowSetTransientFor  func(window, parent uintptr)

	hasBold       bool // Pango attributes resolved
	hasX11Parents bool // GDK X11 foreign windows resolved
}

func (a *gtkAPI) load(lib *dynlib.Library) error {
	required := []struct {
		fn   interface{}
		name string
	}{
		{&a.initCheck, "gtk_init_check"},
		{&a.dialogNew, "gtk_dialog_new"},
		{&a.dialogAddButton, "gtk_dialog_add_button"},
		{&a.dialogSetDefault, "gtk_dialog_set_default_response"},
		{&a.dialogSetSensitive, "gtk_dialog_set_response_sensitive"},
		{&a.dialogResponse, "gtk_dialog_response"},
		{&a.dialogGetContentArea, "gtk_dialog_get_content_area"},
		{&a.dialogRun, "gtk_dialog_run"},
		{&a.windowSetTitle, "gtk_window_set_title"},
		{&a.windowSetModal, "gtk_window_set_modal"},
		{&a.windowSetKeepAbove, "gtk_window_set_keep_above"},
		{&a.windowSetPosition, "gtk_window_set_position"},
		{&a.windowSetResizable, "gtk_window_set_resizable"},
		{&a.containerSetBorder, "gtk_container_set_border_width"},
		{&a.boxNew, "gtk_box_new"},
		{&a.boxPackStart, "gtk_box_pack_start"},
		{&a.labelNew, "gtk_label_new"},
		{&a.labelSetLineWrap, "gtk_label_set_line_wrap"},
		{&a.labelSetMaxWidthChars, "gtk_label_set_max_width_chars"},
		{&a.labelSetAttributes, "gtk_label_set_attributes"},
		{&a.buttonNewWithLabel, "gtk_button_new_with_label"},
		{&a.buttonSetLabel, "gtk_button_set_label"},
		{&a.imageNewFromIconName, "gtk_image_new_from_icon_name"},
		{&a.widgetSetHalign, "gtk_widget_set_halign"},
		{&a.widgetSetValign, "gtk_widget_set_valign"},
		{&a.widgetShowAll, "gtk_widget_show_all"},
		{&a.widgetRealize, "gtk_widget_realize"},
		{&a.widgetGetWindow, "gtk_widget_get_window"},
		{&a.widgetGetToplevel, "gtk_widget_get_toplevel"},
		{&a.widgetDestroy, "gtk_widget_destroy"},
		{&a.eventsPending, "gtk_events_pending"},
		{&a.mainIterationDo, "gtk_main_iteration_do"},
		{&a.signalConnectData, "g_signal_connect_data"},
		{&a.timeoutAdd, "g_timeout_add"},
		{&a.sourceRemove, "g_source_remove"},
	}
	for _, sym := range required {
		addr := lib.Symbol(sym.name)
		if addr == 0 {
			return fmt.Errorf("%w: %s lacks %s", ErrUnavailable, lib.Name(), sym.name)
		}
		purego.RegisterFunc(sym.fn, addr)
	}

	a.hasBold = a.bindOptional(lib, map[string]interface{}{
		"pango_attr_list_new":    &a.attrListNew,
		"pango_attr_list_insert": &a.attrListInsert,
		"pango_attr_list_unref":  &a.attrListUnref,
		"pango_attr_weight_new":  &a.attrWeightNew,
	})
	a.hasX11Parents = a.bindOptional(lib, map[string]interface{}{
		"gdk_display_get_default":                &a.displayGetDefault,
		"gdk_x11_display_get_type":               &a.x11DisplayGetType,
		"g_type_check_instance_is_a":             &a.typeCheckInstanceIsA,
		"gdk_x11_window_foreign_new_for_display": &a.x11ForeignWindow,
		"gdk_window_set_transient_for":           &a.windowSetTransientFor,
	})
	return nil
}

// bindOptional binds every symbol in syms or none of them.
func (a *gtkAPI) bindOptional(lib *dynlib.Library, syms map[string]interface{}) bool {
	addrs := make(map[string]uintptr, len(syms))
	for name := range syms {
		addr := lib.Symbol(name)
		if addr == 0 {
			logDebug("GTK: %s not available, feature disabled", name)
			return false
		}
		addrs[name] = addr
	}
	for name, fn := range syms {
		purego.RegisterFunc(fn, addrs[name])
	}
	return true
}

// gtkTimer is the state one timed dialog threads through its
// g_timeout_add callback.
type gtkTimer struct {
	dialog uintptr
	accept uintptr // the OK button, relabelled with the countdown
	timer  *dialogTimer
	start  time.Time
	source uint32
}

var (
	gtkCallbackOnce sync.Once
	gtkTickCB       uintptr
	gtkClickedCB    uintptr

	// Only the GTK thread touches gtkActive, one dialog at a time.
	gtkActive *gtkTimer
	gtkCalls  *gtkAPI
)

// gtkCallbacks creates the C trampolines once; purego cannot free them.
func gtkCallbacks() {
	gtkCallbackOnce.Do(func() {
		gtkTickCB = purego.NewCallback(func(data uintptr) uintptr {
			return gtkTick()
		})
		gtkClickedCB = purego.NewCallback(func(button, response uintptr) uintptr {
			if gtkCalls != nil {
				gtkCalls.dialogResponse(gtkCalls.widgetGetToplevel(button), int32(response))
			}
			return 0
		})
	})
}

// gtkTick returns G_SOURCE_CONTINUE (1) or G_SOURCE_REMOVE (0).
func gtkTick() uintptr {
	t, api := gtkActive, gtkCalls
	if t == nil || api == nil {
		return 0
	}
	elapsed := time.Since(t.start)
	switch t.timer.Tick(elapsed) {
	case timerEnable:
		api.dialogSetSensitive(t.dialog, gtkResponseOK, true)
		api.dialogSetDefault(t.dialog, gtkResponseOK)
		t.source = 0
		return 0
	case timerAccept:
		api.dialogResponse(t.dialog, gtkResponseOK)
		t.source = 0
		return 0
	}
	if t.accept != 0 {
		api.buttonSetLabel(t.accept, fmt.Sprintf("_OK (%d)", t.timer.Remaining(elapsed)))
	}
	return 1
}

type gtkRequest struct {
	d     *Dialog
	reply chan Button
}

// gtkBackend runs every GTK call on one locked OS thread; GTK is not
// thread safe and must stay on the thread that initialised it.
type gtkBackend struct {
	lib       *dynlib.Library
	api       *gtkAPI
	requests  chan gtkRequest
	done      chan struct{}
	closeOnce sync.Once
	x11       bool
}

func init() {
	registerBackend("gtk", openGTK)
}

func openGTK(env openEnv) (Backend, error) {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return nil, fmt.Errorf("%w: no display", ErrUnavailable)
	}
	b := &gtkBackend{
		requests: make(chan gtkRequest),
		done:     make(chan struct{}),
		x11:      os.Getenv("WAYLAND_DISPLAY") == "",
	}
	ready := make(chan error, 1)
	go b.loop(ready)
	if err := <-ready; err != nil {
		return nil, err
	}
	return b, nil
}

func (b *gtkBackend) loop(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(b.done)

	lib := dynlib.Open("libgtk-3.so.0", "libgtk-3.so")
	if !lib.Loaded() {
		ready <- fmt.Errorf("%w: libgtk-3 not found", ErrUnavailable)
		return
	}
	api := &gtkAPI{}
	if err := api.load(lib); err != nil {
		lib.Close()
		ready <- err
		return
	}
	if !api.initCheck(0, 0) {
		lib.Close()
		ready <- fmt.Errorf("%w: gtk_init_check failed", ErrUnavailable)
		return
	}
	b.lib, b.api = lib, api
	gtkCalls = api
	gtkCallbacks()
	logDebug("GTK backend initialised from %s", lib.Name())
	ready <- nil

	for req := range b.requests {
		req.reply <- b.run(req.d)
	}
	gtkCalls = nil
	if err := lib.Close(); err != nil {
		logWarn("GTK: %v", err)
	}
}

func (b *gtkBackend) Name() string { return "gtk" }

func (b *gtkBackend) Supports(Kind) bool { return true }

func (b *gtkBackend) Show(d *Dialog) (Button, error) {
	if d.Kind == KindCancellable && d.Delay <= 0 {
		return ButtonOK, nil
	}
	reply := make(chan Button, 1)
	select {
	case b.requests <- gtkRequest{d: d, reply: reply}:
	case <-b.done:
		return ButtonNone, &NativeError{Backend: b.Name(), Op: "gtk_dialog_run", Message: "GTK thread has stopped"}
	}
	return <-reply, nil
}

// Close stops the GTK thread and releases libgtk.
func (b *gtkBackend) Close() error {
	b.closeOnce.Do(func() {
		close(b.requests)
		<-b.done
	})
	return nil
}

func (b *gtkBackend) run(d *Dialog) Button {
	api := b.api
	dlg := api.dialogNew()
	api.windowSetTitle(dlg, d.Topic)
	api.windowSetModal(dlg, true)
	api.windowSetResizable(dlg, false)
	api.containerSetBorder(dlg, 6)

	var accept uintptr
	buttons, def := gtkButtons(d)
	for _, btn := range buttons {
		w := api.dialogAddButton(dlg, btn.label, btn.response)
		if btn.response == gtkResponseOK {
			accept = w
		}
	}
	if def != gtkNoDefault {
		api.dialogSetDefault(dlg, def)
	}

	b.layout(dlg, d)

	parented := b.attachParent(dlg, d.Parent)
	if parented {
		api.windowSetPosition(dlg, gtkWinPosCenterOnParent)
	} else {
		api.windowSetPosition(dlg, gtkWinPosCenter)
		api.windowSetKeepAbove(dlg, true)
	}

	timer := newDialogTimer(d)
	if !timer.AcceptEnabled() {
		api.dialogSetSensitive(dlg, gtkResponseOK, false)
	}
	var t *gtkTimer
	if timer.Needed() {
		t = &gtkTimer{dialog: dlg, timer: timer, start: time.Now()}
		if d.Kind == KindCancellable {
			t.accept = accept
			api.buttonSetLabel(accept, fmt.Sprintf("_OK (%d)", timer.Remaining(0)))
		}
		gtkActive = t
		t.source = api.timeoutAdd(uint32(d.Interval/time.Millisecond), gtkTickCB, 0)
	}

	api.widgetShowAll(dlg)
	response := api.dialogRun(dlg)

	if t != nil {
		if t.source != 0 {
			api.sourceRemove(t.source)
		}
		gtkActive = nil
	}
	api.widgetDestroy(dlg)
	for api.eventsPending() {
		api.mainIterationDo(false)
	}
	return gtkOutcome(d, response)
}

// layout fills the content area: icon on the left, bold heading and
// message on the right, choices stacked below as full width buttons.
func (b *gtkBackend) layout(dlg uintptr, d *Dialog) {
	api := b.api
	content := api.dialogGetContentArea(dlg)

	row := api.boxNew(gtkOrientationHorizontal, 12)
	api.containerSetBorder(row, 6)
	if name := gtkIconName(d.Icon); name != "" {
		img := api.imageNewFromIconName(name, gtkIconSizeDialog)
		api.widgetSetValign(img, gtkAlignStart)
		api.boxPackStart(row, img, false, false, 0)
	}

	text := api.boxNew(gtkOrientationVertical, 8)
	if d.Heading != "" {
		api.boxPackStart(text, b.label(d.Heading, true), false, false, 0)
	}
	if d.Message != "" {
		api.boxPackStart(text, b.label(d.Message, false), false, false, 0)
	}
	api.boxPackStart(row, text, true, true, 0)
	api.boxPackStart(content, row, true, true, 0)

	if d.Kind == KindChoices {
		list := api.boxNew(gtkOrientationVertical, 4)
		api.containerSetBorder(list, 6)
		for i, label := range d.Choices {
			btn := api.buttonNewWithLabel(label)
			api.signalConnectData(btn, "clicked", gtkClickedCB, uintptr(ChoiceButton(i)), 0, 0)
			api.boxPackStart(list, btn, false, false, 0)
		}
		api.boxPackStart(content, list, false, false, 0)
	}
}

// label builds a wrapping label. Text is set verbatim; bold comes from a
// Pango attribute so no markup escaping is needed.
func (b *gtkBackend) label(s string, bold bool) uintptr {
	api := b.api
	l := api.labelNew(s)
	api.labelSetLineWrap(l, true)
	api.labelSetMaxWidthChars(l, 60)
	api.widgetSetHalign(l, gtkAlignStart)
	if bold && api.hasBold {
		attrs := api.attrListNew()
		api.attrListInsert(attrs, api.attrWeightNew(pangoWeightBold))
		api.labelSetAttributes(l, attrs)
		api.attrListUnref(attrs)
	}
	return l
}

// attachParent makes dlg transient for the host's X11 window.
func (b *gtkBackend) attachParent(dlg uintptr, parent Window) bool {
	xid, ok := parent.Handle()
	if !ok || !b.x11 || !b.api.hasX11Parents {
		return false
	}
	api := b.api
	display := api.displayGetDefault()
	if display == 0 || !api.typeCheckInstanceIsA(display, api.x11DisplayGetType()) {
		return false
	}
	foreign := api.x11ForeignWindow(display, xid)
	if foreign == 0 {
		logDebug("GTK: parent window %s not found", parent)
		return false
	}
	api.widgetRealize(dlg)
	api.windowSetTransientFor(api.widgetGetWindow(dlg), foreign)
	return true
}
