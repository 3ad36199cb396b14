package version

import (
	"strings"
	"testing"
)

func TestGetVersionInfoKeepsLinkerValues(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "v1.2.3"
	info := GetVersionInfo()
	if info.Version != "v1.2.3" {
		t.Errorf("Version = %q, want %q", info.Version, "v1.2.3")
	}
	if info.GoVersion == "" {
		t.Error("GoVersion should be populated from the runtime")
	}
}

func TestInfoString(t *testing.T) {
	s := Info{Version: "v1", Branch: "main", Revision: "abc1234"}.String()
	for _, want := range []string{"Version: v1", "Branch: main", "Revision: abc1234"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
