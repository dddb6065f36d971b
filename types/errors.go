package types

import (
	"errors"
	"fmt"
)

// MiloError is the structured error carried across the intent pipeline.
// Code is one of the taxonomy constants below; Data holds optional
// error-specific context (e.g. the unresolved token, usage examples).
type MiloError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *MiloError) Error() string {
	return e.Message
}

// Error taxonomy. Parse, resolution, validation, signing and submission
// errors are recoverable by the user; unsupported-action and
// not-implemented errors are fatal for the request.
const (
	ErrParse             = "PARSE_ERROR"
	ErrResolution        = "RESOLUTION_ERROR"
	ErrValidation        = "VALIDATION_ERROR"
	ErrUnsupportedAction = "UNSUPPORTED_ACTION"
	ErrNotImplemented    = "NOT_IMPLEMENTED"
	ErrSigning           = "SIGNING_ERROR"
	ErrSubmission        = "SUBMISSION_ERROR"
	ErrConfig            = "CONFIG_ERROR"
	ErrAI                = "AI_ERROR"
)

// NewParseError reports input that matched no known command shape. Usage
// examples ride along in Data for user guidance.
func NewParseError(msg string, examples []string) *MiloError {
	return &MiloError{Code: ErrParse, Message: msg, Data: examples}
}

// NewResolutionError names the token that is neither a known contact nor
// address-shaped.
func NewResolutionError(token string) *MiloError {
	return &MiloError{
		Code:    ErrResolution,
		Message: fmt.Sprintf("%q is not a saved contact and does not look like a Sui address", token),
		Data:    token,
	}
}

// NewValidationError reports a builder precondition failure, raised before
// any network call.
func NewValidationError(format string, args ...any) *MiloError {
	return &MiloError{Code: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NewUnsupportedActionError reports an action the builder deliberately does
// not handle.
func NewUnsupportedActionError(action Action) *MiloError {
	return &MiloError{
		Code:    ErrUnsupportedAction,
		Message: fmt.Sprintf("unsupported action: %s", action),
		Data:    action.String(),
	}
}

// NewNotImplementedError names a recognized but deliberately unhandled
// asset. An explicit gap, never a silent zero.
func NewNotImplementedError(asset Asset) *MiloError {
	return &MiloError{
		Code:    ErrNotImplemented,
		Message: fmt.Sprintf("balance query for %s is not implemented; only %s is supported", asset, NativeAsset),
		Data:    string(asset),
	}
}

// NewSigningError wraps a wallet signing failure, surfaced verbatim.
func NewSigningError(cause error) *MiloError {
	return &MiloError{Code: ErrSigning, Message: fmt.Sprintf("signing failed: %v", cause)}
}

// NewSubmissionError wraps a chain rejection after signing. The digest is
// carried in Data when rejection occurred post-broadcast.
func NewSubmissionError(msg, digest string) *MiloError {
	e := &MiloError{Code: ErrSubmission, Message: msg}
	if digest != "" {
		e.Data = digest
	}
	return e
}

// NewConfigError reports invalid configuration.
func NewConfigError(format string, args ...any) *MiloError {
	return &MiloError{Code: ErrConfig, Message: fmt.Sprintf(format, args...)}
}

// NewAIError wraps a classification-service failure.
func NewAIError(cause error) *MiloError {
	return &MiloError{Code: ErrAI, Message: fmt.Sprintf("AI classification failed: %v", cause)}
}

// CodeOf extracts the taxonomy code from an error chain, or "" when the
// error is not a MiloError.
func CodeOf(err error) string {
	var me *MiloError
	if errors.As(err, &me) {
		return me.Code
	}
	return ""
}

// IsCode reports whether err carries the given taxonomy code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
