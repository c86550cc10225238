package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"loxi/internal/project"
)

func TestLoadMissingManifest(t *testing.T) {
	dir := t.TempDir()
	m, ok, err := project.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if ok || m != nil {
		t.Fatalf("expected no manifest, got %+v", m)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	content := `
[check]
jobs = 4
cache = true

[output]
format = "json"
color = "off"
`
	if err := os.WriteFile(filepath.Join(dir, "loxi.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, ok, err := project.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if m.Root != dir {
		t.Errorf("Root = %q, want %q", m.Root, dir)
	}
	if m.Config.Check.Jobs != 4 || !m.Config.Check.Cache {
		t.Errorf("check config = %+v", m.Config.Check)
	}
	if m.Config.Output.Format != "json" || m.Config.Output.Color != "off" {
		t.Errorf("output config = %+v", m.Config.Output)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "loxi.toml"), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	path, ok, err := project.Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || path != filepath.Join(root, "loxi.toml") {
		t.Errorf("Find = %q, %v", path, ok)
	}
}
