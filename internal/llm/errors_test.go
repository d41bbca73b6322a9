package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const invalidKeyBody = `{
  "error": {
    "code": 400,
    "message": "API key not valid. Please pass a valid API key.",
    "status": "INVALID_ARGUMENT",
    "details": [
      {
        "@type": "type.googleapis.com/google.rpc.ErrorInfo",
        "reason": "API_KEY_INVALID",
        "domain": "googleapis.com"
      }
    ]
  }
}`

const serviceDisabledMessage = "Generative Language API has not been used in project 1234 before or it is disabled."

const serviceDisabledBody = `{
  "error": {
    "code": 403,
    "message": "Generative Language API has not been used in project 1234 before or it is disabled.",
    "status": "PERMISSION_DENIED",
    "details": [
      {
        "@type": "type.googleapis.com/google.rpc.ErrorInfo",
        "reason": "SERVICE_DISABLED",
        "domain": "googleapis.com"
      }
    ]
  }
}`

const tokenExpiredBody = `{
  "error": {
    "code": 401,
    "message": "token expired",
    "status": "UNAUTHENTICATED",
    "details": [
      {
        "@type": "type.googleapis.com/google.rpc.ErrorInfo",
        "reason": "ACCESS_TOKEN_EXPIRED",
        "domain": "googleapis.com"
      }
    ]
  }
}`

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind string
	}{
		{
			name:     "invalid key reason on 400",
			err:      &googleapi.Error{Code: 400, Message: "API key not valid", Body: invalidKeyBody},
			wantKind: KindAuthentication,
		},
		{
			name:     "http 401",
			err:      &googleapi.Error{Code: 401, Message: "unauthorized"},
			wantKind: KindAuthentication,
		},
		{
			name:     "http 403 without reason",
			err:      &googleapi.Error{Code: 403, Message: "permission denied"},
			wantKind: KindTransport,
		},
		{
			name:     "http 403 service disabled",
			err:      &googleapi.Error{Code: 403, Message: serviceDisabledMessage, Body: serviceDisabledBody},
			wantKind: KindTransport,
		},
		{
			name:     "http 401 with unrelated reason",
			err:      &googleapi.Error{Code: 401, Message: "token expired", Body: tokenExpiredBody},
			wantKind: KindTransport,
		},
		{
			name:     "grpc permission denied",
			err:      status.Error(codes.PermissionDenied, "caller lacks permission"),
			wantKind: KindTransport,
		},
		{
			name:     "grpc unauthenticated",
			err:      status.Error(codes.Unauthenticated, "bad credentials"),
			wantKind: KindAuthentication,
		},
		{
			name:     "http 500",
			err:      &googleapi.Error{Code: 500, Message: "backend error"},
			wantKind: KindTransport,
		},
		{
			name:     "http 429",
			err:      &googleapi.Error{Code: 429, Message: "rate limit exceeded"},
			wantKind: KindTransport,
		},
		{
			name:     "blocked by safety filters",
			err:      &genai.BlockedError{},
			wantKind: KindTransport,
		},
		{
			name:     "network failure",
			err:      errors.New("dial tcp: i/o timeout"),
			wantKind: KindTransport,
		},
		{
			name:     "context canceled",
			err:      context.Canceled,
			wantKind: KindTransport,
		},
		{
			name:     "empty description",
			err:      errors.New(""),
			wantKind: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(OpGeneratePrompt, tt.err)
			require.Error(t, got)
			assert.Equal(t, tt.wantKind, Kind(got))
		})
	}
}

func TestClassifyError_Nil(t *testing.T) {
	assert.NoError(t, classifyError(OpGeneratePrompt, nil))
}

func TestTransportError_WrapsDescription(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	err := classifyError(OpSuggestTask, cause)

	assert.Equal(t, "failed to suggest task type: dial tcp: i/o timeout", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestClassifyError_ServiceDisabledKeepsCause(t *testing.T) {
	cause := &googleapi.Error{Code: 403, Message: serviceDisabledMessage, Body: serviceDisabledBody}
	err := classifyError(OpGeneratePrompt, cause)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Contains(t, err.Error(), "has not been used in project 1234")
	assert.NotContains(t, err.Error(), "invalid API key")
	assert.ErrorIs(t, err, cause)
}

func TestAuthenticationError_ReferencesCredential(t *testing.T) {
	err := classifyError(OpGeneratePrompt, &googleapi.Error{Code: 401, Message: "unauthorized"})

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, err.Error(), "API_KEY")
	assert.Contains(t, err.Error(), OpGeneratePrompt)
}

func TestUnknownError_Message(t *testing.T) {
	err := &UnknownError{Operation: OpGeneratePrompt}
	assert.Equal(t, "failed to generate prompt due to an unknown error", err.Error())
}

func TestConfigurationError_DefaultMessage(t *testing.T) {
	err := &ConfigurationError{}
	assert.Equal(t, MissingAPIKeyMessage, err.Error())
	assert.Contains(t, err.Error(), "API_KEY")

	custom := &ConfigurationError{Message: "no model configured"}
	assert.Equal(t, "no model configured", custom.Error())
}

func TestInvalidInputError_Message(t *testing.T) {
	assert.Equal(t, "invalid input: idea: must not be empty", (&InvalidInputError{Field: "idea", Message: "must not be empty"}).Error())
	assert.Equal(t, "invalid input: bad", (&InvalidInputError{Message: "bad"}).Error())
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindConfiguration, Kind(&ConfigurationError{}))
	assert.Equal(t, KindInvalidInput, Kind(&InvalidInputError{Message: "x"}))
	assert.Equal(t, KindAuthentication, Kind(&AuthenticationError{}))
	assert.Equal(t, KindTransport, Kind(fmt.Errorf("wrapped: %w", &TransportError{Operation: "x"})))
	assert.Equal(t, KindUnknown, Kind(&UnknownError{}))
	assert.Equal(t, "", Kind(errors.New("plain")))
	assert.Equal(t, "", Kind(nil))
}
