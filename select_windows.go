//go:build windows

package msgdlg

func platformCandidates() []string {
	return []string{"taskdialog", "messagebox"}
}
