package version

import (
	"fmt"
	"testing"
)

func TestVersion(t *testing.T) {
	want := fmt.Sprintf("%d.%d.%d%s", Major, Minor, Patch, Release)
	if Version != want {
		t.Errorf("Version = %q, want %q", Version, want)
	}
}
