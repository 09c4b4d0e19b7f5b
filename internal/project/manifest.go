// Package project loads the optional ecma.toml manifest that supplies
// per-project defaults for the CLI. Flags always win over manifest values.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the CLI looks for when no path is given.
const ManifestName = "ecma.toml"

// ParseConfig is the [parse] section.
type ParseConfig struct {
	Syntax         string `toml:"syntax"` // "ts" | "js"
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

// DepsConfig is the [deps] section.
type DepsConfig struct {
	Dynamic bool `toml:"dynamic"`
}

// Manifest is the full decoded ecma.toml.
type Manifest struct {
	Parse ParseConfig `toml:"parse"`
	Deps  DepsConfig  `toml:"deps"`

	// Path the manifest was loaded from; empty for Default().
	Path string `toml:"-"`
}

// ErrBadSyntax indicates an unsupported [parse].syntax value.
var ErrBadSyntax = errors.New(`syntax must be "ts" or "js"`)

// Default returns the manifest used when no ecma.toml exists.
func Default() Manifest {
	return Manifest{
		Parse: ParseConfig{Syntax: "ts", MaxDiagnostics: 64},
	}
}

// Load decodes the manifest at path on top of the defaults.
func Load(path string) (Manifest, error) {
	m := Default()
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if meta.IsDefined("parse", "syntax") {
		switch strings.ToLower(strings.TrimSpace(m.Parse.Syntax)) {
		case "ts", "js":
			m.Parse.Syntax = strings.ToLower(strings.TrimSpace(m.Parse.Syntax))
		default:
			return Manifest{}, fmt.Errorf("%s: %w (got %q)", path, ErrBadSyntax, m.Parse.Syntax)
		}
	}
	if m.Parse.MaxDiagnostics < 0 {
		return Manifest{}, fmt.Errorf("%s: max_diagnostics must not be negative", path)
	}

	m.Path = path
	return m, nil
}

// Find walks up from startDir to locate an ecma.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, serr := os.Stat(candidate); serr == nil {
			return candidate, true, nil
		} else if !errors.Is(serr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, serr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest manifest above startDir, falling back to
// defaults when none exists.
func Discover(startDir string) (Manifest, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Manifest{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
