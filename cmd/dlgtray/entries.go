package main

import (
	"msgdlg"
	"msgdlg/internal/output"
)

// runEntry shows the entry's dialog and returns the answer in words, as
// shown in the status line and copied by "Copy Last Result".
func runEntry(d msgdlg.Extended, e DialogEntry) (string, error) {
	kind, err := e.DialogKind()
	if err != nil {
		return "", err
	}
	reply, err := output.Ask(d, output.Request{
		Kind:    kind,
		Topic:   e.Title(),
		Heading: e.Heading,
		Message: e.Message,
		Choices: e.Choices,
		Delay:   e.Delay(),
	})
	if err != nil {
		return "", err
	}
	return reply.Text(), nil
}
