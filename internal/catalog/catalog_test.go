package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskTypeLabels(t *testing.T) {
	tests := []struct {
		task     TaskType
		expected string
	}{
		{TaskEmailComposition, "Compose an Email"},
		{TaskCodeGeneration, "Generate Code"},
		{TaskImageCreation, "Create an Image Description"},
		{TaskStoryWriting, "Write a Story"},
		{TaskContentSummarization, "Summarize Content"},
		{TaskTranslation, "Translate Text"},
		{TaskBrainstormingIdeas, "Brainstorm Ideas"},
		{TaskQuestionAnswering, "Answer a Question"},
		{TaskType("BOGUS"), "Unknown Task"},
	}

	for _, tt := range tests {
		t.Run(string(tt.task), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.Label())
		})
	}
}

func TestTaskTypes_OrderAndCopy(t *testing.T) {
	tasks := TaskTypes()
	require.Len(t, tasks, 8)
	assert.Equal(t, TaskEmailComposition, tasks[0].Value)
	assert.Equal(t, TaskQuestionAnswering, tasks[7].Value)

	tasks[0].Label = "mutated"
	assert.Equal(t, "Compose an Email", TaskEmailComposition.Label())
}

func TestParseTaskType(t *testing.T) {
	got, err := ParseTaskType(" code_generation ")
	require.NoError(t, err)
	assert.Equal(t, TaskCodeGeneration, got)

	_, err = ParseTaskType("poetry")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMAIL_COMPOSITION")

	_, err = ParseTaskType(NoneKey)
	assert.Error(t, err, "NONE is not a task type")
}

func TestDetailLevels(t *testing.T) {
	assert.Equal(t, "Concise", DetailConcise.Label())
	assert.Equal(t, "Detailed", DetailDetailed.Label())
	assert.Equal(t, "Step-by-step", DetailStepByStep.Label())
	assert.Equal(t, "Unknown Detail", DetailLevel("X").Label())

	got, err := ParseDetailLevel("step-by-step")
	require.NoError(t, err)
	assert.Equal(t, DetailStepByStep, got)

	_, err = ParseDetailLevel("verbose")
	assert.Error(t, err)
}

func TestTones(t *testing.T) {
	tones := Tones()
	require.Len(t, tones, 7)
	assert.Equal(t, ToneNone, tones[0].Value)
	assert.Equal(t, "Default / Not Specified", ToneNone.Label())
	assert.Equal(t, "Persuasive", TonePersuasive.Label())
	assert.Equal(t, "Default", Tone("SARCASTIC").Label())

	got, err := ParseTone("")
	require.NoError(t, err)
	assert.Equal(t, ToneNone, got)

	got, err = ParseTone("friendly")
	require.NoError(t, err)
	assert.Equal(t, ToneFriendly, got)

	_, err = ParseTone("sarcastic")
	assert.Error(t, err)
}

func TestOptionalTask(t *testing.T) {
	none := None()
	assert.True(t, none.IsNone())
	assert.Equal(t, "None", none.Label())
	assert.Equal(t, NoneKey, none.String())
	_, ok := none.Get()
	assert.False(t, ok)

	var zero OptionalTask
	assert.Equal(t, none, zero)

	some := Some(TaskTranslation)
	assert.False(t, some.IsNone())
	task, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, TaskTranslation, task)
	assert.Equal(t, "Translate Text", some.Label())
}

func TestParseOptionalTask(t *testing.T) {
	tests := []struct {
		input   string
		want    OptionalTask
		wantErr bool
	}{
		{"", None(), false},
		{"NONE", None(), false},
		{"none", None(), false},
		{"STORY_WRITING", Some(TaskStoryWriting), false},
		{"maybe", None(), true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOptionalTask(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalTask_JSON(t *testing.T) {
	type wrapper struct {
		Secondary OptionalTask `json:"secondary"`
	}

	data, err := json.Marshal(wrapper{Secondary: Some(TaskCodeGeneration)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"secondary":"CODE_GENERATION"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"secondary":null}`), &w))
	assert.True(t, w.Secondary.IsNone())

	require.NoError(t, json.Unmarshal([]byte(`{"secondary":"NONE"}`), &w))
	assert.True(t, w.Secondary.IsNone())

	assert.Error(t, json.Unmarshal([]byte(`{"secondary":"POEM"}`), &w))
	assert.Error(t, json.Unmarshal([]byte(`{"secondary":3}`), &w))
}

func TestTaskTypesWithNone(t *testing.T) {
	opts := TaskTypesWithNone()
	require.Len(t, opts, 9)
	assert.True(t, opts[0].Value.IsNone())
	assert.Equal(t, "None (No Secondary Task)", opts[0].Label)
	assert.Equal(t, Some(TaskEmailComposition), opts[1].Value)
}

func TestGoalTemplates(t *testing.T) {
	templates := GoalTemplates()
	require.Len(t, templates, 5)
	assert.True(t, templates[0].IsNone())

	tpl, err := LookupGoalTemplate("SOLVE_PROBLEM")
	require.NoError(t, err)
	assert.Equal(t, "Solve a Problem", tpl.Label)
	assert.Contains(t, tpl.Template, "[problem description]")
	assert.False(t, tpl.IsNone())

	_, err = LookupGoalTemplate("write_haiku")
	assert.Error(t, err)
}

func TestTaskExamples(t *testing.T) {
	examples := TaskExamples()
	require.Len(t, examples, len(TaskTypes()))
	for i, opt := range TaskTypes() {
		assert.Equal(t, opt.Value, examples[i].Task)
		assert.NotEmpty(t, examples[i].Basic)
		assert.NotEmpty(t, examples[i].EnhancedPlaceholder)
	}

	ex, ok := ExampleFor(TaskImageCreation)
	require.True(t, ok)
	assert.Equal(t, "A cat wearing a hat.", ex.Basic)

	_, ok = ExampleFor(TaskType("NOPE"))
	assert.False(t, ok)
}
