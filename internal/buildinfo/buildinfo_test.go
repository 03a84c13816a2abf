package buildinfo

import "testing"

func TestShortLocalDev(t *testing.T) {
	if got := Short(); got != "dev" {
		t.Fatalf("unexpected short form: %q", got)
	}
}

func TestShortWithCommit(t *testing.T) {
	origVersion, origCommit := Version, Commit
	defer func() { Version, Commit = origVersion, origCommit }()

	Version = "v1.4.0"
	Commit = "abcdef0"
	if got := Short(); got != "v1.4.0 (abcdef0)" {
		t.Fatalf("unexpected short form: %q", got)
	}
}
