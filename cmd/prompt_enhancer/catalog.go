package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/prompt-enhancer/internal/observability"
	"github.com/jonathan/prompt-enhancer/internal/types"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List task types, detail levels, tones and goal templates",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

var (
	catalogJSON     bool
	catalogExamples bool
)

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Write the catalog as JSON")
	catalogCmd.Flags().BoolVar(&catalogExamples, "examples", false, "Also print a worked example per task type")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	resp := types.NewCatalogResponse()

	if catalogJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	observability.NewPrinter(out).PrintCatalog()

	if catalogExamples {
		for _, ex := range resp.Examples {
			_, _ = fmt.Fprintf(out, "\n%s (%s)\n  Basic:    %s\n  Enhanced: %s\n", ex.Name, ex.Task, ex.Basic, ex.EnhancedPlaceholder)
		}
	}
	return nil
}
