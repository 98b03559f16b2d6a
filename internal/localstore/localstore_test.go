package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open empty: %v", err)
	}
	if _, ok := s.Get(TokenKey); ok {
		t.Fatalf("fresh store should have no token")
	}
	if err := s.Set(TokenKey, "abc.def"); err != nil {
		t.Fatalf("set: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("perm = %o, want 600", perm)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, _ := again.Get(TokenKey); v != "abc.def" {
		t.Errorf("token = %q", v)
	}

	if err := again.Remove(TokenKey); err != nil {
		t.Fatalf("remove: %v", err)
	}
	third, err := Open(path)
	if err != nil {
		t.Fatalf("reopen after remove: %v", err)
	}
	if keys := third.Keys(); len(keys) != 0 {
		t.Errorf("keys = %v, want none", keys)
	}
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	if err := os.WriteFile(path, []byte("token: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected parse error")
	}
}
