package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/grpc/codes"
)

// Operation names used in error messages.
const (
	OpGeneratePrompt = "generate prompt"
	OpSuggestTask    = "suggest task type"
)

// MissingAPIKeyMessage is reported when no credential is configured.
const MissingAPIKeyMessage = "API key is not configured. Please set the API_KEY environment variable in your execution environment. This application cannot function without it."

// reasonAPIKeyInvalid is the ErrorInfo reason the Gemini API attaches to a rejected key.
const reasonAPIKeyInvalid = "API_KEY_INVALID"

// Kind codes returned by Kind.
const (
	KindConfiguration  = "configuration"
	KindInvalidInput   = "invalid_input"
	KindAuthentication = "authentication"
	KindTransport      = "transport"
	KindUnknown        = "unknown"
)

// ConfigurationError means the client cannot be used at all; no call was attempted.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Message == "" {
		return MissingAPIKeyMessage
	}
	return e.Message
}

// InvalidInputError is raised before any call when the input cannot be sent.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// AuthenticationError means the endpoint rejected the configured credential.
type AuthenticationError struct {
	Operation string
	Cause     error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("invalid API key (%s). Please check your API_KEY environment variable", e.Operation)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Cause
}

// TransportError wraps any other failure reported by the endpoint or the network.
type TransportError struct {
	Operation string
	Cause     error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("failed to %s", e.Operation)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// UnknownError covers failures that carry no usable description.
type UnknownError struct {
	Operation string
	Cause     error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("failed to %s due to an unknown error", e.Operation)
}

func (e *UnknownError) Unwrap() error {
	return e.Cause
}

// Kind returns a stable code for the error class, or "" when err is not one of ours.
func Kind(err error) string {
	var (
		configErr *ConfigurationError
		inputErr  *InvalidInputError
		authErr   *AuthenticationError
		transErr  *TransportError
		unkErr    *UnknownError
	)
	switch {
	case errors.As(err, &configErr):
		return KindConfiguration
	case errors.As(err, &inputErr):
		return KindInvalidInput
	case errors.As(err, &authErr):
		return KindAuthentication
	case errors.As(err, &transErr):
		return KindTransport
	case errors.As(err, &unkErr):
		return KindUnknown
	default:
		return ""
	}
}

// classifyError maps a failed GenerateContent call onto the error taxonomy using the
// structured metadata the transport exposes.
func classifyError(operation string, err error) error {
	if err == nil {
		return nil
	}

	if ae, ok := apierror.FromError(err); ok && isCredentialRejected(ae) {
		return &AuthenticationError{Operation: operation, Cause: err}
	}

	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return &TransportError{Operation: operation, Cause: err}
	}

	if strings.TrimSpace(err.Error()) == "" {
		return &UnknownError{Operation: operation, Cause: err}
	}

	return &TransportError{Operation: operation, Cause: err}
}

// isCredentialRejected reports whether the endpoint said the API key itself is invalid.
// A structured reason decides on its own; bare 401 and Unauthenticated count only when the
// error carries no reason. Permission and quota denials stay transport failures.
func isCredentialRejected(ae *apierror.APIError) bool {
	if reason := ae.Reason(); reason != "" {
		return reason == reasonAPIKeyInvalid
	}
	return ae.HTTPCode() == 401 || ae.GRPCStatus().Code() == codes.Unauthenticated
}
