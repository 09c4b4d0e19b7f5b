package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ecmaparse/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFull(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[parse]
syntax = "js"
max_diagnostics = 8

[deps]
dynamic = true
`)

	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Parse.Syntax != "js" {
		t.Errorf("syntax = %q, want js", m.Parse.Syntax)
	}
	if m.Parse.MaxDiagnostics != 8 {
		t.Errorf("max_diagnostics = %d, want 8", m.Parse.MaxDiagnostics)
	}
	if !m.Deps.Dynamic {
		t.Error("deps.dynamic should be true")
	}
	if m.Path != path {
		t.Errorf("path = %q, want %q", m.Path, path)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[deps]
dynamic = true
`)

	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := project.Default()
	if m.Parse.Syntax != def.Parse.Syntax {
		t.Errorf("syntax = %q, want default %q", m.Parse.Syntax, def.Parse.Syntax)
	}
	if m.Parse.MaxDiagnostics != def.Parse.MaxDiagnostics {
		t.Errorf("max_diagnostics = %d, want default %d", m.Parse.MaxDiagnostics, def.Parse.MaxDiagnostics)
	}
}

func TestLoadBadSyntax(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[parse]
syntax = "coffeescript"
`)

	_, err := project.Load(path)
	if !errors.Is(err, project.ErrBadSyntax) {
		t.Fatalf("error = %v, want ErrBadSyntax", err)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `[parse`)
	if _, err := project.Load(path); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[parse]\nsyntax = \"ts\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := project.Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want file under %q", path, root)
	}
}

func TestDiscoverFallsBack(t *testing.T) {
	m, err := project.Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if m != project.Default() {
		t.Errorf("manifest = %+v, want defaults", m)
	}
}
