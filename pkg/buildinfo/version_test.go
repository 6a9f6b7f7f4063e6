package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	Version, Commit, Date = "v1.2.3", "abc123", "2022-12-05"
	defer func() { Version, Commit, Date = "dev", "none", "unknown" }()

	got := Template()
	for _, want := range []string{"{{.Name}}", "v1.2.3", "abc123", "2022-12-05"} {
		if !strings.Contains(got, want) {
			t.Errorf("Template() = %q, missing %q", got, want)
		}
	}
	if !strings.Contains(String(), "commit: abc123") {
		t.Errorf("String() = %q", String())
	}
}
