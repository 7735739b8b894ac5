package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"armsmith/internal/ui"
)

type ErrorHandler struct {
	logger  *slog.Logger
	console *ui.Console
}

func NewErrorHandler() (*ErrorHandler, error) {
	logFile, err := createLogFile()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	console := ui.NewConsole()

	return &ErrorHandler{
		logger:  logger,
		console: console,
	}, nil
}

// logDir returns the OS-standard log directory, honoring the
// ARMSMITH_LOG_DIR override.
func logDir() (string, error) {
	if customLogDir := os.Getenv("ARMSMITH_LOG_DIR"); customLogDir != "" {
		return customLogDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "Armsmith"), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return filepath.Join(homeDir, ".local", "share", "armsmith", "logs"), nil
	case "windows":
		appDataDir := os.Getenv("APPDATA")
		if appDataDir == "" {
			return filepath.Join(homeDir, "AppData", "Roaming", "Armsmith", "logs"), nil
		}
		return filepath.Join(appDataDir, "Armsmith", "logs"), nil
	default:
		return filepath.Join(homeDir, ".armsmith", "logs"), nil
	}
}

func createLogFile() (*os.File, error) {
	dir, err := logDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		// Fall back to the working directory when the standard location
		// is not writable.
		fmt.Fprintf(os.Stderr, "Warning: cannot access log directory %s: %v. Falling back to current directory.\n", dir, err)
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine log directory: %w", err)
		}
	}

	logPath := filepath.Join(dir, "armsmith.log")
	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}

func (h *ErrorHandler) Handle(err error) {
	if err == nil {
		return
	}

	var buildErr *BuildError
	if errors.As(err, &buildErr) {
		h.handleBuildError(buildErr)
	} else {
		h.handleGenericError(err)
	}
}

func (h *ErrorHandler) handleBuildError(err *BuildError) {
	h.logStructuredError(err)

	message := h.console.FormatErrorMessage(err.Context, err.Cause, err.Suggestion)
	h.console.PrintError(message)
}

func (h *ErrorHandler) handleGenericError(err error) {
	h.logger.Error("Unhandled error occurred",
		"error", err.Error(),
		"type", "generic",
	)

	h.console.PrintError(err.Error())
}

func (h *ErrorHandler) logStructuredError(err *BuildError) {
	logAttrs := []slog.Attr{
		slog.String("error", err.OriginalErr.Error()),
		slog.String("type", getErrorTypeName(err.Type)),
		slog.String("context", err.Context),
	}

	if err.Cause != "" {
		logAttrs = append(logAttrs, slog.String("cause", err.Cause))
	}

	if err.Suggestion != "" {
		logAttrs = append(logAttrs, slog.String("suggestion", err.Suggestion))
	}

	h.logger.LogAttrs(context.TODO(), slog.LevelError, "Template build error occurred", logAttrs...)
}

func getErrorTypeName(errType error) string {
	switch errType {
	case ErrSpecNotFound:
		return "spec_not_found"
	case ErrSpecParseFailed:
		return "spec_parse_failed"
	case ErrUnknownResourceKind:
		return "unknown_resource_kind"
	case ErrVolumeNotFound:
		return "volume_not_found"
	case ErrValidationFailed:
		return "validation_failed"
	case ErrRenderFailed:
		return "render_failed"
	default:
		return "unknown"
	}
}
