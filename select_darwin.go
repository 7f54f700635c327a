//go:build darwin

package msgdlg

func platformCandidates() []string {
	return []string{"osascript"}
}
