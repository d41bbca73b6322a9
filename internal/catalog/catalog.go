// Package catalog holds the closed option sets a user picks from when enhancing an idea:
// task types, detail levels, tones and goal templates, with their human-readable labels.
package catalog

import (
	"fmt"
	"strings"
)

// TaskType is the category of downstream AI work an enhanced prompt targets.
type TaskType string

// TaskType values. The string value is the key used on the wire and in the classifier prompt.
const (
	TaskEmailComposition     TaskType = "EMAIL_COMPOSITION"
	TaskCodeGeneration       TaskType = "CODE_GENERATION"
	TaskImageCreation        TaskType = "IMAGE_CREATION"
	TaskStoryWriting         TaskType = "STORY_WRITING"
	TaskContentSummarization TaskType = "CONTENT_SUMMARIZATION"
	TaskTranslation          TaskType = "TRANSLATION"
	TaskBrainstormingIdeas   TaskType = "BRAINSTORMING_IDEAS"
	TaskQuestionAnswering    TaskType = "QUESTION_ANSWERING"
)

// NoneKey is the wire value meaning "no task" or "no tone".
const NoneKey = "NONE"

// TaskOption pairs a TaskType with its label.
type TaskOption struct {
	Value TaskType `json:"value"`
	Label string   `json:"label"`
}

var taskTypes = []TaskOption{
	{Value: TaskEmailComposition, Label: "Compose an Email"},
	{Value: TaskCodeGeneration, Label: "Generate Code"},
	{Value: TaskImageCreation, Label: "Create an Image Description"},
	{Value: TaskStoryWriting, Label: "Write a Story"},
	{Value: TaskContentSummarization, Label: "Summarize Content"},
	{Value: TaskTranslation, Label: "Translate Text"},
	{Value: TaskBrainstormingIdeas, Label: "Brainstorm Ideas"},
	{Value: TaskQuestionAnswering, Label: "Answer a Question"},
}

// TaskTypes returns every task type in display order.
func TaskTypes() []TaskOption {
	out := make([]TaskOption, len(taskTypes))
	copy(out, taskTypes)
	return out
}

// Label returns the human-readable name of the task type.
func (t TaskType) Label() string {
	for _, opt := range taskTypes {
		if opt.Value == t {
			return opt.Label
		}
	}
	return "Unknown Task"
}

// Valid reports whether t is a member of the catalog.
func (t TaskType) Valid() bool {
	for _, opt := range taskTypes {
		if opt.Value == t {
			return true
		}
	}
	return false
}

// ParseTaskType resolves a task key. Matching ignores case and surrounding whitespace.
func ParseTaskType(s string) (TaskType, error) {
	key := TaskType(strings.ToUpper(strings.TrimSpace(s)))
	if key.Valid() {
		return key, nil
	}
	return "", fmt.Errorf("unknown task type %q (valid: %s)", s, strings.Join(taskKeys(), ", "))
}

func taskKeys() []string {
	keys := make([]string, len(taskTypes))
	for i, opt := range taskTypes {
		keys[i] = string(opt.Value)
	}
	return keys
}

// DetailLevel controls how elaborate the enhanced prompt should be.
type DetailLevel string

// DetailLevel values.
const (
	DetailConcise    DetailLevel = "CONCISE"
	DetailDetailed   DetailLevel = "DETAILED"
	DetailStepByStep DetailLevel = "STEP_BY_STEP"
)

// DetailOption pairs a DetailLevel with its label.
type DetailOption struct {
	Value DetailLevel `json:"value"`
	Label string      `json:"label"`
}

var detailLevels = []DetailOption{
	{Value: DetailConcise, Label: "Concise"},
	{Value: DetailDetailed, Label: "Detailed"},
	{Value: DetailStepByStep, Label: "Step-by-step"},
}

// DetailLevels returns every detail level in display order.
func DetailLevels() []DetailOption {
	out := make([]DetailOption, len(detailLevels))
	copy(out, detailLevels)
	return out
}

// Label returns the human-readable name of the detail level.
func (d DetailLevel) Label() string {
	for _, opt := range detailLevels {
		if opt.Value == d {
			return opt.Label
		}
	}
	return "Unknown Detail"
}

// Valid reports whether d is a member of the catalog.
func (d DetailLevel) Valid() bool {
	for _, opt := range detailLevels {
		if opt.Value == d {
			return true
		}
	}
	return false
}

// ParseDetailLevel resolves a detail key. "step-by-step" is accepted for STEP_BY_STEP.
func ParseDetailLevel(s string) (DetailLevel, error) {
	key := DetailLevel(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_"))
	if key.Valid() {
		return key, nil
	}
	keys := make([]string, len(detailLevels))
	for i, opt := range detailLevels {
		keys[i] = string(opt.Value)
	}
	return "", fmt.Errorf("unknown detail level %q (valid: %s)", s, strings.Join(keys, ", "))
}

// Tone is the enumerated tone selection. ToneNone means no tone is requested.
type Tone string

// Tone values.
const (
	ToneNone         Tone = NoneKey
	ToneFormal       Tone = "FORMAL"
	ToneCasual       Tone = "CASUAL"
	ToneProfessional Tone = "PROFESSIONAL"
	ToneFriendly     Tone = "FRIENDLY"
	ToneHumorous     Tone = "HUMOROUS"
	TonePersuasive   Tone = "PERSUASIVE"
)

// ToneOption pairs a Tone with its label.
type ToneOption struct {
	Value Tone   `json:"value"`
	Label string `json:"label"`
}

var tones = []ToneOption{
	{Value: ToneNone, Label: "Default / Not Specified"},
	{Value: ToneFormal, Label: "Formal"},
	{Value: ToneCasual, Label: "Casual"},
	{Value: ToneProfessional, Label: "Professional"},
	{Value: ToneFriendly, Label: "Friendly"},
	{Value: ToneHumorous, Label: "Humorous"},
	{Value: TonePersuasive, Label: "Persuasive"},
}

// Tones returns every tone, ToneNone first.
func Tones() []ToneOption {
	out := make([]ToneOption, len(tones))
	copy(out, tones)
	return out
}

// Label returns the human-readable name of the tone.
func (t Tone) Label() string {
	for _, opt := range tones {
		if opt.Value == t {
			return opt.Label
		}
	}
	return "Default"
}

// Valid reports whether t is a member of the catalog, ToneNone included.
func (t Tone) Valid() bool {
	for _, opt := range tones {
		if opt.Value == t {
			return true
		}
	}
	return false
}

// ParseTone resolves a tone key. An empty string resolves to ToneNone.
func ParseTone(s string) (Tone, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ToneNone, nil
	}
	key := Tone(strings.ToUpper(trimmed))
	if key.Valid() {
		return key, nil
	}
	keys := make([]string, len(tones))
	for i, opt := range tones {
		keys[i] = string(opt.Value)
	}
	return "", fmt.Errorf("unknown tone %q (valid: %s)", s, strings.Join(keys, ", "))
}
