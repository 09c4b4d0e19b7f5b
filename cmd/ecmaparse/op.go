package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ecmaparse/internal/ops"
)

var opCmd = &cobra.Command{
	Use:   "op <name>",
	Short: "Run a registered op against a JSON envelope from stdin",
	Long: `Op reads one JSON request envelope from stdin, dispatches it to the
named operation and writes the raw response to stdout. Available ops:
parse, parse_ts, extract_dependencies`,
	Args: cobra.ExactArgs(1),
	RunE: runOp,
}

func runOp(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry := ops.Default()

	req, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	out, err := registry.Dispatch(name, req)
	if out != nil {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	}
	if err != nil {
		return fmt.Errorf("op %s failed (known ops: %s): %w",
			name, strings.Join(registry.Names(), ", "), err)
	}
	return nil
}
