package token

import (
	"os"
	"path/filepath"
	"testing"
)

// pointHome redirects the home directory so tests never touch the real
// credentials file.
func pointHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvToken, "")
}

func TestSaveLoadClear(t *testing.T) {
	pointHome(t)

	if got := Load(); got != "" {
		t.Fatalf("expected empty token before save, got %q", got)
	}

	if err := Save("tok-abc"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := Load(); got != "tok-abc" {
		t.Errorf("Load = %q, want tok-abc", got)
	}

	if err := Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if got := Load(); got != "" {
		t.Errorf("expected empty token after clear, got %q", got)
	}

	// Clearing again must not error.
	if err := Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}

func TestSave_EmptyToken(t *testing.T) {
	pointHome(t)
	if err := Save("   "); err == nil {
		t.Error("expected error for blank token")
	}
}

func TestLoad_EnvWins(t *testing.T) {
	pointHome(t)
	if err := Save("file-token"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	t.Setenv(EnvToken, "env-token")
	if got := Load(); got != "env-token" {
		t.Errorf("Load = %q, want env-token", got)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	pointHome(t)
	p, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	os.MkdirAll(filepath.Dir(p), 0700)
	os.WriteFile(p, []byte("not json"), 0600)

	if got := Load(); got != "" {
		t.Errorf("corrupt file should load as empty, got %q", got)
	}
}
