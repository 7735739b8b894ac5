package errors

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewErrorHandler(t *testing.T) {
	t.Setenv("ARMSMITH_LOG_DIR", t.TempDir())

	handler, err := NewErrorHandler()
	if err != nil {
		t.Fatalf("NewErrorHandler() failed: %v", err)
	}

	if handler.logger == nil {
		t.Error("ErrorHandler.logger is nil")
	}
	if handler.console == nil {
		t.Error("ErrorHandler.console is nil")
	}
}

func TestErrorHandler_Handle_BuildError(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	t.Setenv("ARMSMITH_LOG_DIR", logDir)

	handler, err := NewErrorHandler()
	if err != nil {
		t.Fatalf("NewErrorHandler() failed: %v", err)
	}

	testErr := NewValidationError(
		"Template validation failed",
		"duplicate resource",
		"rename one of the resources",
		errors.New("original error"),
	)

	handler.Handle(testErr)

	logFile := filepath.Join(logDir, "armsmith.log")
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Log file was not created: %v", err)
	}
	if !strings.Contains(string(data), "validation_failed") {
		t.Errorf("Log file should record the error type, got: %s", data)
	}
}

func TestErrorHandler_Handle_GenericError(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	t.Setenv("ARMSMITH_LOG_DIR", logDir)

	handler, err := NewErrorHandler()
	if err != nil {
		t.Fatalf("NewErrorHandler() failed: %v", err)
	}

	handler.Handle(errors.New("generic test error"))

	logFile := filepath.Join(logDir, "armsmith.log")
	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}
}

func TestErrorHandler_Handle_NilError(t *testing.T) {
	t.Setenv("ARMSMITH_LOG_DIR", t.TempDir())

	handler, err := NewErrorHandler()
	if err != nil {
		t.Fatalf("NewErrorHandler() failed: %v", err)
	}

	// Must not panic
	handler.Handle(nil)
}

func TestGetErrorTypeName(t *testing.T) {
	tests := []struct {
		errorType error
		expected  string
	}{
		{ErrSpecNotFound, "spec_not_found"},
		{ErrSpecParseFailed, "spec_parse_failed"},
		{ErrUnknownResourceKind, "unknown_resource_kind"},
		{ErrVolumeNotFound, "volume_not_found"},
		{ErrValidationFailed, "validation_failed"},
		{ErrRenderFailed, "render_failed"},
		{errors.New("unknown"), "unknown"},
	}

	for _, test := range tests {
		result := getErrorTypeName(test.errorType)
		if result != test.expected {
			t.Errorf("getErrorTypeName(%v) = %q, want %q", test.errorType, result, test.expected)
		}
	}
}

func TestGetDefaultHandler(t *testing.T) {
	t.Setenv("ARMSMITH_LOG_DIR", t.TempDir())
	resetDefaultHandler()
	defer resetDefaultHandler()

	handler1, err1 := GetDefaultHandler()
	if err1 != nil {
		t.Fatalf("GetDefaultHandler() first call failed: %v", err1)
	}

	handler2, err2 := GetDefaultHandler()
	if err2 != nil {
		t.Fatalf("GetDefaultHandler() second call failed: %v", err2)
	}

	if handler1 != handler2 {
		t.Error("GetDefaultHandler() should return the same instance on multiple calls")
	}
}

func TestBuildError_Error(t *testing.T) {
	originalErr := errors.New("original error message")
	buildErr := NewRenderError("context", "cause", "suggestion", originalErr)

	if buildErr.Error() != originalErr.Error() {
		t.Errorf("BuildError.Error() = %q, want %q", buildErr.Error(), originalErr.Error())
	}
	if buildErr.Unwrap() != originalErr {
		t.Error("BuildError.Unwrap() should return the original error")
	}
}

func TestBuildError_Is(t *testing.T) {
	buildErr := NewUnknownKindError("context", "cause", "suggestion", errors.New("boom"))

	if !errors.Is(buildErr, ErrUnknownResourceKind) {
		t.Error("BuildError should match its kind sentinel via errors.Is")
	}
	if errors.Is(buildErr, ErrRenderFailed) {
		t.Error("BuildError should not match a different sentinel")
	}
}

func TestErrorConstructors(t *testing.T) {
	originalErr := errors.New("test error")

	tests := []struct {
		name         string
		constructor  func(string, string, string, error) *BuildError
		expectedType error
	}{
		{"NewSpecError", NewSpecError, ErrSpecNotFound},
		{"NewParseError", NewParseError, ErrSpecParseFailed},
		{"NewUnknownKindError", NewUnknownKindError, ErrUnknownResourceKind},
		{"NewValidationError", NewValidationError, ErrValidationFailed},
		{"NewRenderError", NewRenderError, ErrRenderFailed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.constructor("context", "cause", "suggestion", originalErr)

			if err.Type != test.expectedType {
				t.Errorf("%s created error with type %v, want %v", test.name, err.Type, test.expectedType)
			}
			if err.Context != "context" || err.Cause != "cause" || err.Suggestion != "suggestion" {
				t.Errorf("%s did not preserve context/cause/suggestion", test.name)
			}
			if err.OriginalErr != originalErr {
				t.Errorf("%s created error with originalErr %v, want %v", test.name, err.OriginalErr, originalErr)
			}
		})
	}
}

func TestLogDir_Override(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("ARMSMITH_LOG_DIR", custom)

	dir, err := logDir()
	if err != nil {
		t.Fatalf("logDir() failed: %v", err)
	}
	if dir != custom {
		t.Errorf("logDir() = %q, want override %q", dir, custom)
	}
}
