package bui

import (
	"fmt"
	"testing"
)

func TestVersion(t *testing.T) {
	want := fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	if Version != want {
		t.Errorf("Version = %q, want %q", Version, want)
	}
}
