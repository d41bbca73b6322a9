package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/prompt-enhancer/internal/enhance"
	"github.com/jonathan/prompt-enhancer/internal/logger"
	"github.com/jonathan/prompt-enhancer/internal/schemas"
	"github.com/jonathan/prompt-enhancer/internal/types"
	bundled "github.com/jonathan/prompt-enhancer/schemas"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Enhance every request in a JSON file",
	Long: `Enhance a JSON array of enhancement requests concurrently.

Every item is validated before any model call is made. Results are written as a JSON array
in input order; a failed item carries its error instead of a prompt. The command exits
non-zero when any item failed.`,
	RunE: runBatch,
}

var (
	batchInput       string
	batchOutput      string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "in", "i", "", "Path to a JSON array of enhancement requests (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", enhance.DefaultBatchConcurrency, "Maximum requests in flight")

	_ = batchCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := loadApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	reqs, err := loadBatch(batchInput)
	if err != nil {
		return err
	}

	ctx = logger.ContextWithOperation(ctx, "batch")
	a.log.Info("starting batch", "requests", len(reqs), "concurrency", batchConcurrency)

	results := enhance.NewEnhancer(a.client, a.log).EnhanceAll(ctx, reqs, batchConcurrency)

	if err := writeBatchResults(cmd.OutOrStdout(), batchOutput, results); err != nil {
		return err
	}

	if failed := enhance.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(results))
	}
	return nil
}

// loadBatch reads, validates and prepares every request in the file.
func loadBatch(path string) ([]*types.EnhancementRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("batch file must be a JSON array: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("batch file %s contains no requests", path)
	}

	reqs := make([]*types.EnhancementRequest, len(items))
	for i, item := range items {
		if err := schemas.ValidateBundled(bundled.EnhancementRequest, item); err != nil {
			return nil, fmt.Errorf("batch item %d: %w", i, err)
		}
		req := &types.EnhancementRequest{}
		if err := json.Unmarshal(item, req); err != nil {
			return nil, fmt.Errorf("batch item %d: %w", i, err)
		}
		if err := req.Prepare(); err != nil {
			return nil, fmt.Errorf("batch item %d: %w", i, err)
		}
		reqs[i] = req
	}
	return reqs, nil
}

func writeBatchResults(stdout io.Writer, path string, results []types.BatchResult) error {
	jsonBytes, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, err := stdout.Write(jsonBytes)
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
