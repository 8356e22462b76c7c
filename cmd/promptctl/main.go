// promptctl runs the prompt pipeline from the command line.
//
// Usage:
//
//	promptctl generate --goal "<goal>" [--context ...] [--tone ...] [--constraints ...] [--format ...] [--audience ...]
//	promptctl critique [file|-]
//	promptctl score [file|-]
//	promptctl rewrite [file|-] [--type balanced]
//	promptctl review <file>...
//	promptctl templates
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "promptctl",
		Short: "Generate, critique, optimize and score LLM prompts",
		Long:  "promptctl turns a rough goal into structured prompt variants and lints,\noptimizes and scores prompt texts. Every command prints JSON.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		Version:      version,
	}
	root.PersistentFlags().StringVar(&globalFlags.catalog, "catalog", "", "YAML catalog replacing the embedded one")
	root.PersistentFlags().StringVar(&globalFlags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(),
		newCritiqueCmd(),
		newScoreCmd(),
		newRewriteCmd(),
		newReviewCmd(),
		newTemplatesCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
