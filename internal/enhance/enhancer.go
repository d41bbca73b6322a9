package enhance

import (
	"context"
	"strings"

	"github.com/jonathan/prompt-enhancer/internal/llm"
	"github.com/jonathan/prompt-enhancer/internal/logger"
	"github.com/jonathan/prompt-enhancer/internal/types"
)

// Enhancer sends assembled prompts to the model. It holds no per-call state and is safe
// for concurrent use.
type Enhancer struct {
	client llm.Client
	log    *logger.Logger
}

// NewEnhancer creates an Enhancer. A nil client means no credential is configured; every
// call then fails with *llm.ConfigurationError.
func NewEnhancer(client llm.Client, log *logger.Logger) *Enhancer {
	if log == nil {
		log = logger.Discard()
	}
	return &Enhancer{client: client, log: log.WithComponent("enhancer")}
}

// Enhance assembles req and performs exactly one generation call. The returned text is
// trimmed. Errors are the llm taxonomy, returned unchanged.
func (e *Enhancer) Enhance(ctx context.Context, req *types.EnhancementRequest) (string, error) {
	if e.client == nil {
		return "", &llm.ConfigurationError{}
	}

	prompt := Assemble(req)
	text, err := e.client.Generate(ctx, llm.Request{
		Operation:         llm.OpGeneratePrompt,
		Tier:              llm.TierStandard,
		SystemInstruction: prompt.SystemInstruction,
		Prompt:            prompt.UserQuery,
		Params:            llm.EnhanceParams,
	})
	if err != nil {
		e.log.LogError(ctx, err, "prompt enhancement failed",
			"kind", llm.Kind(err),
			"task_type", string(req.TaskType),
		)
		return "", err
	}

	e.log.WithContext(ctx).Debug("prompt enhanced",
		"task_type", string(req.TaskType),
		"chars", len(text),
	)
	return strings.TrimSpace(text), nil
}
