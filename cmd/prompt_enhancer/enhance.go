package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/prompt-enhancer/internal/catalog"
	"github.com/jonathan/prompt-enhancer/internal/enhance"
	"github.com/jonathan/prompt-enhancer/internal/logger"
	"github.com/jonathan/prompt-enhancer/internal/schemas"
	"github.com/jonathan/prompt-enhancer/internal/types"
	bundled "github.com/jonathan/prompt-enhancer/schemas"
	"github.com/spf13/cobra"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance [idea...]",
	Short: "Generate an enhanced prompt from an idea",
	Long: `Generate an enhanced AI prompt from a short idea and the selected options.

The idea is taken from the arguments ("-" reads it from stdin), from --request, or seeded
from a goal template with --goal. The enhanced prompt is written to stdout.`,
	Example: `  prompt_enhancer enhance --task CODE_GENERATION --detail STEP_BY_STEP "python csv reader"
  prompt_enhancer enhance --goal explain_concept --task QUESTION_ANSWERING
  prompt_enhancer enhance --suggest "a dragon made of stained glass"
  echo "email my team about the deadline" | prompt_enhancer enhance -`,
	RunE: runEnhance,
}

var (
	enhanceTask       string
	enhanceSecondary  string
	enhanceDetail     string
	enhanceTone       string
	enhanceCustomTone string
	enhanceAspects    string
	enhanceInclude    string
	enhanceAvoid      string
	enhanceGoal       string
	enhanceRequest    string
	enhanceSuggest    bool
	enhanceJSON       bool
)

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceTask, "task", "t", "", "Primary task type key (default from config, EMAIL_COMPOSITION)")
	enhanceCmd.Flags().StringVarP(&enhanceSecondary, "secondary", "s", "", "Secondary task type key, or NONE")
	enhanceCmd.Flags().StringVarP(&enhanceDetail, "detail", "d", "", "Detail level: CONCISE, DETAILED or STEP_BY_STEP (default from config, DETAILED)")
	enhanceCmd.Flags().StringVar(&enhanceTone, "tone", "", "Tone key, or NONE")
	enhanceCmd.Flags().StringVar(&enhanceCustomTone, "custom-tone", "", "Free-text tone; overrides --tone")
	enhanceCmd.Flags().StringVar(&enhanceAspects, "aspects", "", "Aspects the prompt should go into more detail on")
	enhanceCmd.Flags().StringVar(&enhanceInclude, "include", "", "Words or phrases the tone should include")
	enhanceCmd.Flags().StringVar(&enhanceAvoid, "avoid", "", "Words or phrases the tone should avoid")
	enhanceCmd.Flags().StringVarP(&enhanceGoal, "goal", "g", "", "Goal template key; seeds the idea when none is given")
	enhanceCmd.Flags().StringVarP(&enhanceRequest, "request", "r", "", "Path to an enhancement request JSON file (flags override its values)")
	enhanceCmd.Flags().BoolVar(&enhanceSuggest, "suggest", false, "Ask the model for the task type first (ignored when --task or the request file sets one)")
	enhanceCmd.Flags().BoolVar(&enhanceJSON, "json", false, "Write the result as JSON")

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := loadApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	req, taskGiven, err := buildEnhancementRequest(cmd, args, a)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	ctx = logger.ContextWithRequestID(ctx, requestID)
	ctx = logger.ContextWithOperation(ctx, "enhance")

	if enhanceSuggest && !taskGiven {
		applySuggestion(ctx, a, req)
	}

	if a.printer != nil {
		a.printer.PrintRequest(req)
		prompt := enhance.Assemble(req)
		a.printer.PrintPrompt(prompt.SystemInstruction, prompt.UserQuery)
	}

	enhanced, err := enhance.NewEnhancer(a.client, a.log).Enhance(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if enhanceJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(types.EnhancementResult{RequestID: requestID, EnhancedPrompt: enhanced})
	}
	_, _ = fmt.Fprintln(out, enhanced)
	return nil
}

// buildEnhancementRequest merges --request, config defaults and flags, then prepares the result.
// taskGiven reports whether the task type came from --task or the request file rather than
// the configured default.
func buildEnhancementRequest(cmd *cobra.Command, args []string, a *app) (req *types.EnhancementRequest, taskGiven bool, err error) {
	req = &types.EnhancementRequest{}

	if enhanceRequest != "" {
		if err := schemas.ValidateBundledFile(bundled.EnhancementRequest, enhanceRequest); err != nil {
			return nil, false, fmt.Errorf("request file %s is invalid: %w", enhanceRequest, err)
		}
		data, err := os.ReadFile(enhanceRequest)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read request file: %w", err)
		}
		if err := json.Unmarshal(data, req); err != nil {
			return nil, false, fmt.Errorf("failed to parse request file: %w", err)
		}
	}

	idea, err := readIdea(cmd, args)
	if err != nil {
		return nil, false, err
	}
	if idea != "" {
		req.Idea = idea
	}

	flags := cmd.Flags()
	taskGiven = flags.Changed("task") || req.TaskType != ""

	task := a.cfg.TaskType
	if flags.Changed("task") {
		task = enhanceTask
	}
	if flags.Changed("task") || req.TaskType == "" {
		t, err := catalog.ParseTaskType(task)
		if err != nil {
			return nil, false, err
		}
		req.TaskType = t
	}

	detail := a.cfg.DetailLevel
	if flags.Changed("detail") {
		detail = enhanceDetail
	}
	if flags.Changed("detail") || req.DetailLevel == "" {
		d, err := catalog.ParseDetailLevel(detail)
		if err != nil {
			return nil, false, err
		}
		req.DetailLevel = d
	}

	tone := a.cfg.Tone
	if flags.Changed("tone") {
		tone = enhanceTone
	}
	if flags.Changed("tone") || req.Tone == "" {
		t, err := catalog.ParseTone(tone)
		if err != nil {
			return nil, false, err
		}
		req.Tone = t
	}

	if flags.Changed("secondary") {
		secondary, err := catalog.ParseOptionalTask(enhanceSecondary)
		if err != nil {
			return nil, false, err
		}
		req.SecondaryTask = secondary
	}
	if flags.Changed("custom-tone") {
		req.CustomTone = enhanceCustomTone
	}
	if flags.Changed("aspects") {
		req.SpecificAspects = enhanceAspects
	}
	if flags.Changed("include") {
		req.WordsToInclude = enhanceInclude
	}
	if flags.Changed("avoid") {
		req.WordsToAvoid = enhanceAvoid
	}
	if flags.Changed("goal") {
		req.GoalTemplate = enhanceGoal
	}

	if err := req.Prepare(); err != nil {
		return nil, false, fmt.Errorf("invalid request: %w", err)
	}
	return req, taskGiven, nil
}

// applySuggestion replaces the default task type with the model's pick. Failures and
// unusable answers keep the default.
func applySuggestion(ctx context.Context, a *app, req *types.EnhancementRequest) {
	suggestion, err := enhance.NewSuggester(a.client, a.log).Suggest(ctx, req.Idea, nil)
	if err != nil {
		a.log.Warn("task suggestion failed; keeping default task type", "error", err, "task_type", string(req.TaskType))
		return
	}

	if a.printer != nil {
		var task *catalog.OptionalTask
		if suggestion != nil {
			task = &suggestion.Task
		}
		a.printer.PrintSuggestion(task)
	}

	if suggestion == nil {
		return
	}
	if t, ok := suggestion.Task.Get(); ok {
		a.log.Debug("using suggested task type", "task_type", string(t))
		req.TaskType = t
	}
}
