// Package types provides type definitions for structured data exchanged by the prompt enhancer.
package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/prompt-enhancer/internal/catalog"
)

// EnhancementRequest is everything the user selected for a single enhancement.
type EnhancementRequest struct {
	Idea            string               `json:"idea" validate:"required"`
	TaskType        catalog.TaskType     `json:"task_type" validate:"required,task_type"`
	SecondaryTask   catalog.OptionalTask `json:"secondary_task_type"`
	DetailLevel     catalog.DetailLevel  `json:"detail_level" validate:"required,detail_level"`
	Tone            catalog.Tone         `json:"tone,omitempty" validate:"omitempty,tone"`
	CustomTone      string               `json:"custom_tone,omitempty"`
	SpecificAspects string               `json:"specific_aspects,omitempty"`
	WordsToInclude  string               `json:"words_to_include,omitempty"`
	WordsToAvoid    string               `json:"words_to_avoid,omitempty"`
	GoalTemplate    string               `json:"goal_template,omitempty"`
}

// SuggestTaskRequest asks the classifier to pick a task type for an idea.
type SuggestTaskRequest struct {
	Idea string `json:"idea"`
}

// SuggestTaskResponse carries the classifier outcome. Suggested is false when the model
// gave no usable answer; Task is then empty and the caller keeps its manual selection.
type SuggestTaskResponse struct {
	Suggested bool   `json:"suggested"`
	Task      string `json:"task,omitempty"`
	Label     string `json:"label,omitempty"`
}

// EnhancementResult is the generated prompt returned to a caller.
type EnhancementResult struct {
	RequestID      string `json:"request_id,omitempty"`
	EnhancedPrompt string `json:"enhanced_prompt"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("task_type", func(fl validator.FieldLevel) bool {
			return catalog.TaskType(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("detail_level", func(fl validator.FieldLevel) bool {
			return catalog.DetailLevel(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("tone", func(fl validator.FieldLevel) bool {
			return catalog.Tone(fl.Field().String()).Valid()
		})
	})
	return validate
}

// Validate checks enum membership and that the idea is not blank.
func (r *EnhancementRequest) Validate() error {
	if err := requestValidator().Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Idea) == "" {
		return fmt.Errorf("idea must not be blank")
	}
	return nil
}

// Normalize fills optional enums with their defaults.
func (r *EnhancementRequest) Normalize() {
	if r.Tone == "" {
		r.Tone = catalog.ToneNone
	}
}

// ApplyGoalTemplate seeds an empty idea with a goal template's scaffold text and records
// the template label. A non-empty idea is left alone; only the label is recorded.
func (r *EnhancementRequest) ApplyGoalTemplate(value string) error {
	tpl, err := catalog.LookupGoalTemplate(value)
	if err != nil {
		return err
	}
	if tpl.IsNone() {
		r.GoalTemplate = ""
		return nil
	}
	if strings.TrimSpace(r.Idea) == "" {
		r.Idea = tpl.Template
	}
	r.GoalTemplate = tpl.Label
	return nil
}

// Prepare readies a decoded request for enhancement: a goal_template key seeds the idea,
// optional enums get their defaults, then the request is validated.
func (r *EnhancementRequest) Prepare() error {
	if r.GoalTemplate != "" {
		if err := r.ApplyGoalTemplate(r.GoalTemplate); err != nil {
			return err
		}
	}
	r.Normalize()
	return r.Validate()
}

// BatchResult is the outcome of one request in a batch. Exactly one of EnhancedPrompt and
// Error is set.
type BatchResult struct {
	Index          int    `json:"index"`
	RequestID      string `json:"request_id"`
	EnhancedPrompt string `json:"enhanced_prompt,omitempty"`
	Error          string `json:"error,omitempty"`
	Kind           string `json:"kind,omitempty"`
}
