package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"ecmaparse/internal/engine"
)

// ParseDirResult is the outcome for one file of a directory parse. Err is
// set for I/O failures; syntax problems land in the result's Bag instead.
type ParseDirResult struct {
	Path   string
	Result *ParseResult
	Err    error
}

var sourceExts = map[string]bool{
	".js":  true,
	".mjs": true,
	".cjs": true,
	".jsx": true,
	".ts":  true,
	".mts": true,
	".cts": true,
	".tsx": true,
}

// listSourceFiles returns the sorted list of script files under dir.
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if sourceExts[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ParseDir parses every script file under dir in parallel. Each file gets
// its own file set, so results stay independent and goroutines share
// nothing. Results come back sorted by path regardless of completion order.
func ParseDir(ctx context.Context, dir string, syn engine.Syntax, maxDiagnostics, jobs int) ([]ParseDirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// index i is unique per goroutine, no mutex needed
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, perr := Parse(path, syn, maxDiagnostics)
			results[i] = ParseDirResult{Path: path, Result: res, Err: perr}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
