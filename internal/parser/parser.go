package parser

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"armsmith/pkg/spec"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Parse reads and validates a deployment spec YAML file, returning the parsed
// Deployment struct or an error.
func Parse(filePath string) (*spec.Deployment, error) {
	// Check if file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("deployment spec file not found: %s", filePath)
	}

	// Configure Viper
	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetConfigType("yaml")

	// Read the file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("deployment spec file not found: %s", filePath)
		}
		return nil, fmt.Errorf("failed to read deployment spec file: %w", err)
	}

	// Unmarshal into Deployment struct
	var d spec.Deployment
	if err := v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("failed to parse deployment spec file - malformed YAML: %w", err)
	}

	// Validate the structure
	if err := validate.Struct(&d); err != nil {
		return nil, formatValidationError(err)
	}

	return &d, nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, formatFieldError(e))
		}

		if len(errorMessages) == 1 {
			return fmt.Errorf("validation error: %s", errorMessages[0])
		}

		result := "validation errors:\n"
		for _, msg := range errorMessages {
			result += fmt.Sprintf("  - %s\n", msg)
		}
		return fmt.Errorf("%s", result)
	}
	return fmt.Errorf("validation failed: %w", err)
}

// formatFieldError formats a single validation error into a user-friendly message.
func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	switch tag {
	case "required":
		return fmt.Sprintf("field '%s' is required but missing", field)
	case "eq":
		return fmt.Sprintf("field '%s' must be '%s'", field, e.Param())
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of: %s", field, e.Param())
	case "min", "max", "gte":
		return fmt.Sprintf("field '%s' is out of range (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("field '%s' failed validation (%s)", field, tag)
	}
}
