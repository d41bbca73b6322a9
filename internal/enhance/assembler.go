// Package enhance turns a user's idea and option selections into an enhanced prompt, and
// asks the model which task type best fits an idea.
package enhance

import (
	"fmt"
	"strings"

	"github.com/jonathan/prompt-enhancer/internal/catalog"
	"github.com/jonathan/prompt-enhancer/internal/prompts"
	"github.com/jonathan/prompt-enhancer/internal/types"
)

const promptFile = "enhance.json"

// Prompt is the assembled pair sent to the model.
type Prompt struct {
	SystemInstruction string
	UserQuery         string
}

// taskGuidance maps task types that get extra system guidance to their prompt key.
var taskGuidance = map[catalog.TaskType]string{
	catalog.TaskImageCreation:        "system-image-creation",
	catalog.TaskCodeGeneration:       "system-code-generation",
	catalog.TaskEmailComposition:     "system-email-composition",
	catalog.TaskStoryWriting:         "system-story-writing",
	catalog.TaskContentSummarization: "system-content-summarization",
}

// Assemble builds the system instruction and user query for req. It is pure: the same
// request always yields the same bytes. It does not validate; a blank idea is templated as is.
func Assemble(req *types.EnhancementRequest) Prompt {
	return Prompt{
		SystemInstruction: systemInstruction(req.TaskType),
		UserQuery:         userQuery(req),
	}
}

func systemInstruction(task catalog.TaskType) string {
	instruction := prompts.MustGet(promptFile, "system-base")
	if key, ok := taskGuidance[task]; ok {
		instruction += prompts.MustGet(promptFile, key)
	}
	return instruction
}

func userQuery(req *types.EnhancementRequest) string {
	var sb strings.Builder

	sb.WriteString("Transform the following user idea into an enhanced AI prompt.\n")
	fmt.Fprintf(&sb, "Original user idea: \"%s\"", req.Idea)

	if req.GoalTemplate != "" {
		fmt.Fprintf(&sb, "\n(User started with the '%s' template.)", req.GoalTemplate)
	}

	fmt.Fprintf(&sb, "\nPrimary task type: \"%s\"", req.TaskType.Label())

	if secondary, ok := req.SecondaryTask.Get(); ok {
		fmt.Fprintf(&sb, "\nSecondary task objective: \"%s. Integrate this secondary objective seamlessly or as a distinct part of the enhanced prompt as appropriate.\"", secondary.Label())
	}

	fmt.Fprintf(&sb, "\nDesired prompt detail: \"%s\"", req.DetailLevel.Label())

	if aspects := strings.TrimSpace(req.SpecificAspects); aspects != "" {
		fmt.Fprintf(&sb, "\nFocus on providing extra detail for these aspects: \"%s\"", aspects)
	}

	if tone := EffectiveTone(req); tone != "" {
		fmt.Fprintf(&sb, "\nDesired tone for the AI's final output (using the enhanced prompt): \"%s\"", tone)
	}

	if include := strings.TrimSpace(req.WordsToInclude); include != "" {
		fmt.Fprintf(&sb, "\nFor the tone, try to include words/phrases like: \"%s\"", include)
	}
	if avoid := strings.TrimSpace(req.WordsToAvoid); avoid != "" {
		fmt.Fprintf(&sb, "\nFor the tone, try to avoid words/phrases like: \"%s\"", avoid)
	}

	sb.WriteString("\n\nEnhanced AI Prompt:")
	return sb.String()
}

// EffectiveTone resolves the single tone instruction: custom text first, then the
// enumerated tone unless it is NONE. An empty result means no tone clause.
func EffectiveTone(req *types.EnhancementRequest) string {
	if custom := strings.TrimSpace(req.CustomTone); custom != "" {
		return custom
	}
	if req.Tone == "" || req.Tone == catalog.ToneNone {
		return ""
	}
	return req.Tone.Label()
}
