package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ecmaparse/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ecmaparse",
	Short: "Error-tolerant JavaScript and TypeScript parsing toolkit",
	Long:  `ecmaparse parses JavaScript and TypeScript sources, dumps tokens and ASTs, and extracts module dependencies`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(opCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
