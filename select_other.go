//go:build !windows && !darwin && !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package msgdlg

func platformCandidates() []string {
	return nil
}
