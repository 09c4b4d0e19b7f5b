package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"ecmaparse/internal/analyzer"
	"ecmaparse/internal/driver"
	"ecmaparse/internal/engine"
)

var depsCmd = &cobra.Command{
	Use:   "deps [flags] <file|->",
	Short: "Extract module dependencies from a source file",
	Long:  `Deps lists static imports, re-exports, require() calls and (optionally) dynamic import() specifiers in source order. Pass - to read from stdin`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDeps,
}

func init() {
	depsCmd.Flags().Bool("dynamic", false, "collect dynamic import() references (default from ecma.toml)")
}

func runDeps(cmd *cobra.Command, args []string) error {
	path := args[0]

	startDir := "."
	if path != "-" {
		startDir = filepath.Dir(path)
	}
	settings, err := resolveSettings(cmd, startDir)
	if err != nil {
		return err
	}

	var result *driver.ParseResult
	if path == "-" {
		src, rerr := io.ReadAll(cmd.InOrStdin())
		if rerr != nil {
			return fmt.Errorf("failed to read stdin: %w", rerr)
		}
		result, err = driver.ParseBytes("stdin", src, engine.TypeScript(), settings.maxDiagnostics)
	} else {
		result, err = driver.Parse(path, engine.TypeScript(), settings.maxDiagnostics)
	}
	if err != nil {
		return err
	}

	if result.Bag.HasErrors() {
		printDiagnostics(cmd, result)
		return fmt.Errorf("parse failed, dependencies unavailable")
	}

	deps := analyzer.Extract(result.Module, settings.dynamic)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(deps)
}
