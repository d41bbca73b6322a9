package enhance

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/prompt-enhancer/internal/catalog"
	"github.com/jonathan/prompt-enhancer/internal/llm"
	"github.com/jonathan/prompt-enhancer/internal/logger"
	"github.com/jonathan/prompt-enhancer/internal/prompts"
)

// Suggestion is a usable classifier answer: a task type, or None when the model was not
// confident that any task matches.
type Suggestion struct {
	Task catalog.OptionalTask
}

// Suggester asks the model which task type fits an idea.
type Suggester struct {
	client llm.Client
	log    *logger.Logger
}

// NewSuggester creates a Suggester. A nil client behaves like NewEnhancer's.
func NewSuggester(client llm.Client, log *logger.Logger) *Suggester {
	if log == nil {
		log = logger.Discard()
	}
	return &Suggester{client: client, log: log.WithComponent("suggester")}
}

// Suggest returns the model's pick among tasks (all catalog task types when tasks is nil).
//
// A nil *Suggestion with a nil error means the call succeeded but the answer was not a
// known key nor NONE; callers keep the manual selection. A blank idea fails with
// *llm.InvalidInputError before any call.
func (s *Suggester) Suggest(ctx context.Context, idea string, tasks []catalog.TaskOption) (*Suggestion, error) {
	if s.client == nil {
		return nil, &llm.ConfigurationError{}
	}
	if strings.TrimSpace(idea) == "" {
		return nil, &llm.InvalidInputError{Field: "idea", Message: "user input is empty, cannot suggest task type"}
	}
	if tasks == nil {
		tasks = catalog.TaskTypes()
	}

	raw, err := s.client.Generate(ctx, llm.Request{
		Operation: llm.OpSuggestTask,
		Tier:      llm.TierStandard,
		Prompt:    buildSuggestPrompt(idea, tasks),
		Params:    llm.SuggestParams,
	})
	if err != nil {
		s.log.LogError(ctx, err, "task suggestion failed", "kind", llm.Kind(err))
		return nil, err
	}

	answer := strings.TrimSpace(raw)
	for _, task := range tasks {
		if string(task.Value) == answer {
			return &Suggestion{Task: catalog.Some(task.Value)}, nil
		}
	}
	if answer == catalog.NoneKey {
		return &Suggestion{Task: catalog.None()}, nil
	}

	s.log.WithContext(ctx).Warn("model suggested an unknown task key", "answer", answer)
	return nil, nil
}

func buildSuggestPrompt(idea string, tasks []catalog.TaskOption) string {
	entries := make([]string, len(tasks))
	for i, task := range tasks {
		entries[i] = fmt.Sprintf("%s (key: %s)", task.Label, task.Value)
	}

	template := prompts.MustGet(promptFile, "suggest-task-type")
	return prompts.Format(template, map[string]string{
		"Idea":     idea,
		"TaskList": strings.Join(entries, "; "),
	})
}
