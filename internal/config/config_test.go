package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `
[suggest]
exclude_extensions = ["CPP"]
silence_never = ["incomplete-patterns"]

[complete]
max_results = 25

[catalog]
ghc = "/opt/ghc/bin/ghc"
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Suggest.ExcludeExtensions) != 1 || cfg.Suggest.ExcludeExtensions[0] != "CPP" {
		t.Fatalf("exclude_extensions = %v", cfg.Suggest.ExcludeExtensions)
	}
	if cfg.Complete.MaxResults != 25 {
		t.Fatalf("max_results = %d", cfg.Complete.MaxResults)
	}
	if cfg.Catalog.GHC != "/opt/ghc/bin/ghc" {
		t.Fatalf("ghc = %q", cfg.Catalog.GHC)
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Complete.MaxResults != 25 {
		t.Fatalf("config not found from nested dir: %+v", cfg)
	}
}

func TestDiscoverDefaults(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Complete.MaxResults != 0 || len(cfg.Suggest.ExcludeExtensions) != 0 {
		t.Fatalf("expected zero-value defaults, got %+v", cfg)
	}
}

func TestLoadRejectsBadToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("[suggest\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}
