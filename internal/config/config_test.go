package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
addr: ":9090"
api_base_url: "https://api.example.com"
log_level: debug
assets:
  bucket: shop-assets
  region: eu-west-1
  public_base_url: "https://cdn.example.com"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultServerConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Assets.Bucket != "shop-assets" {
		t.Errorf("Assets.Bucket = %q", cfg.Assets.Bucket)
	}
	// Values not present in the file keep their defaults.
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want default text", cfg.LogFormat)
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("api_base_urll: oops\n"), 0600)

	cfg := DefaultServerConfig()
	if err := cfg.LoadFile(path); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SHOPADMIN_API_URL", "https://env.example.com")
	t.Setenv("SHOPADMIN_ADDR", "")

	cfg := DefaultServerConfig()
	cfg.ApplyEnv()
	if cfg.APIBaseURL != "https://env.example.com" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("empty env should not override Addr, got %q", cfg.Addr)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultServerConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	cfg.APIBaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing api_base_url")
	}
}
