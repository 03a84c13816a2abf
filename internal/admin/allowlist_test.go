package admin

import "testing"

func TestAllowlist(t *testing.T) {
	al := NewAllowlist([]int64{100, 200, 0, 100})

	if al.Len() != 2 {
		t.Fatalf("len = %d, want 2 (zero and duplicate IDs dropped)", al.Len())
	}
	if !al.Allowed(100) || !al.Allowed(200) {
		t.Fatalf("listed IDs must be allowed")
	}
	if al.Allowed(300) {
		t.Fatalf("unlisted ID must be denied")
	}
	if al.Allowed(0) {
		t.Fatalf("zero ID must never be allowed")
	}
}

func TestEmptyAllowlistDeniesEveryone(t *testing.T) {
	al := NewAllowlist(nil)
	if al.Len() != 0 {
		t.Fatalf("len = %d, want 0", al.Len())
	}
	if al.Allowed(1) {
		t.Fatalf("empty allowlist must deny")
	}
}
