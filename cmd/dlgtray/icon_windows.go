//go:build windows

package main

import _ "embed"

// The Windows tray loads icons through LoadImage, which wants ICO.
//
//go:embed icon.ico
var defaultIcon []byte
