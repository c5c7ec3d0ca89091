package version

import "testing"

func TestGetters(t *testing.T) {
	orig := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = orig[0], orig[1], orig[2] })

	Version, Commit, Date = "v1.2.0", "abc123", "2026-01-02"
	if GetVersion() != "v1.2.0" || GetCommit() != "abc123" || GetDate() != "2026-01-02" {
		t.Errorf("getters = %q %q %q", GetVersion(), GetCommit(), GetDate())
	}
	if got, want := GetFullVersion(), "v1.2.0 (commit: abc123, built: 2026-01-02)"; got != want {
		t.Errorf("GetFullVersion() = %q, want %q", got, want)
	}
}
