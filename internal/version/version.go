// Package version holds the release number shared by dlgctl and dlgtray.
package version

import "fmt"

const (
	Major   = 0
	Minor   = 1
	Patch   = 0
	Release = "-dev" // -dev -release etc.
)

// Version is the full version string, e.g. "0.1.0-dev".
var Version = fmt.Sprintf("%d.%d.%d%s", Major, Minor, Patch, Release)
