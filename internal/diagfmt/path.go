package diagfmt

import (
	"path/filepath"

	"ecmaparse/internal/source"
)

// formatPath renders a file's path according to mode. Virtual files (stdin,
// op payloads) stay as registered regardless of mode.
func formatPath(f *source.File, mode PathMode) string {
	if f.Flags&source.FileVirtual != 0 {
		return f.Path
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	case PathModeRelative:
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return f.Path
		}
		wd, err := filepath.Abs(".")
		if err != nil {
			return f.Path
		}
		if rel, rerr := filepath.Rel(wd, abs); rerr == nil {
			return rel
		}
		return f.Path
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		return f.Path
	}
}
