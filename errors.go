package eventbrite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	CodeMissingRequiredValue    ErrorCode = "missing_required_value"
	CodeTypeMismatch            ErrorCode = "type_mismatch"
	CodeInvalidArgument         ErrorCode = "invalid_argument"
	CodeExclusiveGroupViolation ErrorCode = "exclusive_group_violation"
	CodeMissingDependency       ErrorCode = "missing_dependency"
	CodeUnauthenticated         ErrorCode = "unauthenticated"
	CodeNotImplemented          ErrorCode = "not_implemented"
)

// Error is returned for every failure the client detects itself.
// Transport and decoding failures are returned as-is and are never wrapped in an Error.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new client error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new client error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// WithDetails returns a new Error with the provided map merged into details.
// For multiple details, this is more efficient than chaining WithDetail calls.
func (e *Error) WithDetails(details map[string]any) *Error {
	if len(details) == 0 {
		return e
	}
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: merged,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// checkError converts a validator failure on a single field into an invalid_argument error.
func checkError(field string, err error) *Error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return Errorf(CodeInvalidArgument, "%s: %v", field, err).WithDetail("field", field)
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, formatValidationError(ve))
	}
	msg := strings.Join(messages, "; ")
	return Errorf(CodeInvalidArgument, "%s: %s", field, msg).WithDetail("field", field)
}

// formatValidationError converts a validator.FieldError to a human-readable message.
// Field tables only use oneof (directly or under dive); other tags get a generic message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
