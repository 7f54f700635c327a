//go:build !windows

package msgdlg

// HostTracker returns the tracker to use when the host supplies none.
// Outside Windows no process-wide lookup exists, so dialogs are unparented.
func HostTracker() WindowTracker {
	return nil
}
