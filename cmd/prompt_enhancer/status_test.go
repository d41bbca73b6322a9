package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/prompt-enhancer/internal/llm"
	"github.com/jonathan/prompt-enhancer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCommand_NoAPIKey(t *testing.T) {
	withoutAPIKey(t)

	stdout, _, err := execute(t, "", "status", "--json")

	require.NoError(t, err)
	var resp types.StatusResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.False(t, resp.APIKeyConfigured)
	assert.Equal(t, llm.MissingAPIKeyMessage, resp.Message)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
}

func TestStatusCommand_Configured(t *testing.T) {
	useMockClient(t, &MockLLMClient{})

	stdout, _, err := execute(t, "", "status", "--model", "gemini-2.5-pro")

	require.NoError(t, err)
	assert.Contains(t, stdout, "AI STATUS")
	assert.Contains(t, stdout, "configured")
	assert.Contains(t, stdout, "gemini-2.5-pro")
}

func TestStatusCommand_APIKeyFlag(t *testing.T) {
	withoutAPIKey(t)
	mock := &MockLLMClient{}
	orig := newLLMClient
	var gotKey string
	newLLMClient = func(_ context.Context, _ *llm.Config, apiKey string) (llm.Client, error) {
		gotKey = apiKey
		return mock, nil
	}
	t.Cleanup(func() { newLLMClient = orig })

	stdout, _, err := execute(t, "", "status", "--json", "--api-key", "flag-key")

	require.NoError(t, err)
	assert.Equal(t, "flag-key", gotKey)
	assert.Contains(t, stdout, `"api_key_configured": true`)
}

func TestConfigFile(t *testing.T) {
	withoutAPIKey(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"model": "gemini-exp", "log_level": "warn"}`), 0644))

	stdout, _, err := execute(t, "", "status", "--json", "--config", path)

	require.NoError(t, err)
	var resp types.StatusResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "gemini-exp", resp.Model)
}

func TestConfigFile_Invalid(t *testing.T) {
	withoutAPIKey(t)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown field", `{"colour": "blue"}`, "invalid config file"},
		{"bad type", `{"port": "eighty"}`, "invalid config file"},
		{"bad task", `{"task_type": "POEM"}`, "unknown task type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, _, err := execute(t, "", "status", "--config", path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigFile_DefaultSelections(t *testing.T) {
	mock := &MockLLMClient{}
	useMockClient(t, mock)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"task_type": "STORY_WRITING", "detail_level": "CONCISE", "tone": "HUMOROUS"}`), 0644))

	_, _, err := execute(t, "", "enhance", "--config", path, "a cat who runs a bakery")

	require.NoError(t, err)
	prompt := mock.Requests()[0].Prompt
	assert.Contains(t, prompt, "Primary task type: \"Write a Story\"")
	assert.Contains(t, prompt, "Desired prompt detail: \"Concise\"")
	assert.Contains(t, prompt, "\"Humorous\"")
}
