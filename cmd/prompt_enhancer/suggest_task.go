package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/prompt-enhancer/internal/enhance"
	"github.com/jonathan/prompt-enhancer/internal/logger"
	"github.com/jonathan/prompt-enhancer/internal/types"
	"github.com/spf13/cobra"
)

var suggestTaskCmd = &cobra.Command{
	Use:   "suggest-task [idea...]",
	Short: "Ask the model which task type fits an idea",
	Long: `Ask the model which task type best fits an idea and print its key.

NONE means the model found the idea too vague. When the model answers with anything
else the command prints nothing to stdout and still succeeds.`,
	RunE: runSuggestTask,
}

var suggestTaskJSON bool

func init() {
	suggestTaskCmd.Flags().BoolVar(&suggestTaskJSON, "json", false, "Write the result as JSON")

	rootCmd.AddCommand(suggestTaskCmd)
}

func runSuggestTask(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := loadApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	idea, err := readIdea(cmd, args)
	if err != nil {
		return err
	}

	ctx = logger.ContextWithOperation(ctx, "suggest-task")
	suggestion, err := enhance.NewSuggester(a.client, a.log).Suggest(ctx, idea, nil)
	if err != nil {
		return err
	}

	resp := types.SuggestTaskResponse{}
	if suggestion != nil {
		resp.Suggested = true
		resp.Task = suggestion.Task.String()
		resp.Label = suggestion.Task.Label()
	}

	if a.printer != nil {
		if suggestion != nil {
			a.printer.PrintSuggestion(&suggestion.Task)
		} else {
			a.printer.PrintSuggestion(nil)
		}
	}

	out := cmd.OutOrStdout()
	if suggestTaskJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if !resp.Suggested {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No usable suggestion; keep your current task type.")
		return nil
	}
	_, _ = fmt.Fprintln(out, resp.Task)
	return nil
}
