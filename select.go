package msgdlg

import "strings"

// unixCandidates orders the X11/Wayland backends for the current session.
// Without a display there is nothing to try.
func unixCandidates(getenv func(string) string) []string {
	if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return nil
	}
	desktop := strings.ToUpper(getenv("XDG_CURRENT_DESKTOP") + ":" + getenv("DESKTOP_SESSION"))
	if strings.Contains(desktop, "KDE") || getenv("KDE_FULL_SESSION") != "" {
		return []string{"kdialog", "gtk", "zenity"}
	}
	return []string{"gtk", "zenity", "kdialog"}
}
