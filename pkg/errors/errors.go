package errors

import (
	"errors"
	"fmt"
	"sort"
)

// ErrorCode identifies a failure class; tests and the CLI match on it
// instead of on messages.
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Loading the user configuration or a --json data document
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
	ErrDataLoad   ErrorCode = "DATA_LOAD"

	// Template documents
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateParse    ErrorCode = "TEMPLATE_PARSE"
	ErrTemplateEncode   ErrorCode = "TEMPLATE_ENCODE"

	// Placeholder resolution and rendering
	ErrInvalidFunction ErrorCode = "INVALID_FUNCTION"
	ErrPromptFailed    ErrorCode = "PROMPT_FAILED"
	ErrRenderFailed    ErrorCode = "RENDER_FAILED"

	// Materialization
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Post-processing
	ErrGitNotFound      ErrorCode = "GIT_NOT_FOUND"
	ErrProjectRootUnset ErrorCode = "PROJECT_ROOT_UNSET"
	ErrGitInit          ErrorCode = "GIT_INIT"
)

// SparkError is the structured error returned by spark packages. Details
// carry the context of the failure, such as the token, path or command.
type SparkError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Wrapped error
}

func (e *SparkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SparkError) Unwrap() error {
	return e.Wrapped
}

// Is matches any SparkError carrying the same code
func (e *SparkError) Is(target error) bool {
	var other *SparkError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// WithDetail records key on the error and returns it for chaining
func (e *SparkError) WithDetail(key string, value any) *SparkError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// HasDetail reports whether key was recorded
func (e *SparkError) HasDetail(key string) bool {
	_, ok := e.Details[key]
	return ok
}

func newError(err error, code ErrorCode, message string) *SparkError {
	return &SparkError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
		Wrapped: err,
	}
}

func New(code ErrorCode, message string) *SparkError {
	return newError(nil, code, message)
}

func Newf(code ErrorCode, format string, args ...any) *SparkError {
	return newError(nil, code, fmt.Sprintf(format, args...))
}

// Wrap returns nil when err is nil, so it can wrap a call result directly
func Wrap(err error, code ErrorCode, message string) *SparkError {
	if err == nil {
		return nil
	}
	return newError(err, code, message)
}

func Wrapf(err error, code ErrorCode, format string, args ...any) *SparkError {
	if err == nil {
		return nil
	}
	return newError(err, code, fmt.Sprintf(format, args...))
}

// IsErrorCode reports whether the outermost SparkError in err's chain has code
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code && code != ErrUnknown
}

// GetErrorCode returns the code of the outermost SparkError, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var serr *SparkError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the outermost SparkError, or nil
func GetErrorDetails(err error) map[string]any {
	var serr *SparkError
	if errors.As(err, &serr) {
		return serr.Details
	}
	return nil
}

// DetailLines renders the details of err as "key: value" lines sorted by key
func DetailLines(err error) []string {
	details := GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", key, details[key]))
	}
	return lines
}
