package errors

import "errors"

var (
	ErrSpecNotFound        = errors.New("deployment spec file not found")
	ErrSpecParseFailed     = errors.New("deployment spec parsing failed")
	ErrUnknownResourceKind = errors.New("unknown resource kind")
	ErrVolumeNotFound      = errors.New("volume not found")
	ErrValidationFailed    = errors.New("template validation failed")
	ErrRenderFailed        = errors.New("template rendering failed")
)

type BuildError struct {
	Type        error
	Context     string
	Cause       string
	Suggestion  string
	OriginalErr error
}

func (e *BuildError) Error() string {
	return e.OriginalErr.Error()
}

func (e *BuildError) Unwrap() error {
	return e.OriginalErr
}

// Is lets callers match the error kind sentinel through the wrapping layer.
func (e *BuildError) Is(target error) bool {
	return errors.Is(e.Type, target)
}

func NewBuildError(errorType error, context, cause, suggestion string, originalErr error) *BuildError {
	return &BuildError{
		Type:        errorType,
		Context:     context,
		Cause:       cause,
		Suggestion:  suggestion,
		OriginalErr: originalErr,
	}
}

func NewSpecError(context, cause, suggestion string, originalErr error) *BuildError {
	return NewBuildError(ErrSpecNotFound, context, cause, suggestion, originalErr)
}

func NewParseError(context, cause, suggestion string, originalErr error) *BuildError {
	return NewBuildError(ErrSpecParseFailed, context, cause, suggestion, originalErr)
}

func NewUnknownKindError(context, cause, suggestion string, originalErr error) *BuildError {
	return NewBuildError(ErrUnknownResourceKind, context, cause, suggestion, originalErr)
}

func NewValidationError(context, cause, suggestion string, originalErr error) *BuildError {
	return NewBuildError(ErrValidationFailed, context, cause, suggestion, originalErr)
}

func NewRenderError(context, cause, suggestion string, originalErr error) *BuildError {
	return NewBuildError(ErrRenderFailed, context, cause, suggestion, originalErr)
}
