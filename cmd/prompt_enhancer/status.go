package main

import (
	"context"
	"encoding/json"

	"github.com/jonathan/prompt-enhancer/internal/llm"
	"github.com/jonathan/prompt-enhancer/internal/observability"
	"github.com/jonathan/prompt-enhancer/internal/types"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether an API key is configured",
	Long:  "Report whether an API key is configured and which model will be used. No request is sent to the model.",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var statusJSON bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Write the status as JSON")

	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(context.Background(), cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	resp := types.StatusResponse{
		APIKeyConfigured: a.client != nil,
		Model:            a.model(),
	}
	if !resp.APIKeyConfigured {
		resp.Message = llm.MissingAPIKeyMessage
	}

	out := cmd.OutOrStdout()
	if statusJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	observability.NewPrinter(out).PrintStatus(resp.APIKeyConfigured, resp.Model)
	return nil
}
