//go:build linux || freebsd || openbsd || netbsd || dragonfly

package msgdlg

import "os"

func platformCandidates() []string {
	return unixCandidates(os.Getenv)
}
