package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version, GitCommit, BuildDate = "dev", "unknown", "unknown"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion failed: expected dev, got %q", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc1234", "2026-10-18"
	if got := GetFullVersion(); got != "1.2.0 (abc1234, built 2026-10-18)" {
		t.Errorf("GetFullVersion failed: got %q", got)
	}
	if got := GetVersion(); got != "1.2.0" {
		t.Errorf("GetVersion failed: expected 1.2.0, got %q", got)
	}
}
