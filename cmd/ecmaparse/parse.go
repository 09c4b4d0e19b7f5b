package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/diagfmt"
	"ecmaparse/internal/driver"
	"ecmaparse/internal/engine"
	"ecmaparse/internal/project"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|directory|->",
	Short: "Parse a source file or directory and output the AST",
	Long:  `Parse analyzes JavaScript or TypeScript sources and outputs their Abstract Syntax Trees. Pass - to read from stdin`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("syntax", "", "source syntax (ts|js, default from ecma.toml)")
	parseCmd.Flags().String("format", "json", "output format (json|tree|msgpack)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

// cliSettings are the parse defaults after merging flags with ecma.toml.
type cliSettings struct {
	syntax         engine.Syntax
	maxDiagnostics int
	dynamic        bool
}

// resolveSettings merges flags over the nearest manifest. startDir anchors
// the manifest search.
func resolveSettings(cmd *cobra.Command, startDir string) (cliSettings, error) {
	manifest, err := project.Discover(startDir)
	if err != nil {
		return cliSettings{}, err
	}

	syntaxName := manifest.Parse.Syntax
	if f := cmd.Flags().Lookup("syntax"); f != nil && f.Changed {
		syntaxName = f.Value.String()
	}

	var syn engine.Syntax
	switch syntaxName {
	case "ts", "":
		syn = engine.TypeScript()
	case "js":
		syn = engine.JavaScript()
	default:
		return cliSettings{}, fmt.Errorf("unknown syntax %q (must be ts or js)", syntaxName)
	}

	maxDiagnostics := manifest.Parse.MaxDiagnostics
	pf := cmd.Root().PersistentFlags()
	if pf.Changed("max-diagnostics") || maxDiagnostics == 0 {
		if maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
			return cliSettings{}, err
		}
	}

	dynamic := manifest.Deps.Dynamic
	if f := cmd.Flags().Lookup("dynamic"); f != nil && f.Changed {
		dynamic = f.Value.String() == "true"
	}

	return cliSettings{syntax: syn, maxDiagnostics: maxDiagnostics, dynamic: dynamic}, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "json", "tree", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	if path == "-" {
		settings, serr := resolveSettings(cmd, ".")
		if serr != nil {
			return serr
		}
		src, rerr := io.ReadAll(cmd.InOrStdin())
		if rerr != nil {
			return fmt.Errorf("failed to read stdin: %w", rerr)
		}
		result, perr := driver.ParseBytes("stdin", src, settings.syntax, settings.maxDiagnostics)
		if perr != nil {
			return perr
		}
		return emitParseResult(cmd, result, format, quiet)
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		settings, serr := resolveSettings(cmd, filepath.Dir(path))
		if serr != nil {
			return serr
		}
		result, perr := driver.Parse(path, settings.syntax, settings.maxDiagnostics)
		if perr != nil {
			return fmt.Errorf("parsing failed: %w", perr)
		}
		return emitParseResult(cmd, result, format, quiet)
	}

	return runParseDir(cmd, path, format, quiet)
}

func emitParseResult(cmd *cobra.Command, result *driver.ParseResult, format string, quiet bool) error {
	printDiagnostics(cmd, result)
	if quiet {
		return nil
	}
	return emitModule(cmd.OutOrStdout(), result, format)
}

func printDiagnostics(cmd *cobra.Command, result *driver.ParseResult) {
	if !result.Bag.HasErrors() && !result.Bag.HasWarnings() {
		return
	}
	result.Bag.Sort()
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	})
}

func emitModule(w io.Writer, result *driver.ParseResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Module)
	case "tree":
		return diagfmt.FormatASTTree(w, result.Module, result.FileSet)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(result.Module)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// fileAST pairs a path with its parsed module for directory output.
type fileAST struct {
	Path string      `json:"path"`
	AST  *ast.Module `json:"ast"`
}

func runParseDir(cmd *cobra.Command, dir, format string, quiet bool) error {
	settings, err := resolveSettings(cmd, dir)
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	results, err := driver.ParseDir(cmd.Context(), dir, settings.syntax, settings.maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	var modules []fileAST
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		printDiagnostics(cmd, r.Result)
		modules = append(modules, fileAST{Path: r.Path, AST: r.Result.Module})
	}

	if quiet {
		return nil
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(modules)
	case "msgpack":
		return msgpack.NewEncoder(out).Encode(modules)
	case "tree":
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			fmt.Fprintf(out, "%s:\n", r.Path)
			if terr := diagfmt.FormatASTTree(out, r.Result.Module, r.Result.FileSet); terr != nil {
				return terr
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
