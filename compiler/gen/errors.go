package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrUnsupportedColumnType indicates a logical-delete column whose type
	// category is outside numeric, string and boolean.
	ErrUnsupportedColumnType = errors.New("logicaldelete: unsupported column type")
	// ErrColumnNotFound indicates a configured column that the table lacks.
	ErrColumnNotFound = errors.New("logicaldelete: column not found")
	// ErrMissingDeleteValue indicates that the delete/un-delete value pair
	// is not configured.
	ErrMissingDeleteValue = errors.New("logicaldelete: missing delete value")
	// ErrMalformedDeleteValue indicates a configured value that cannot be
	// written as a literal of the column category.
	ErrMalformedDeleteValue = errors.New("logicaldelete: malformed delete value")
	// ErrInvalidConfig is returned when synthesis is asked to run with an
	// effective configuration that is not valid.
	ErrInvalidConfig = errors.New("logicaldelete: invalid effective configuration")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("logicaldelete: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("logicaldelete: code generation failed")
)

// ValidationError is a per-table configuration problem. Its message is the
// diagnostic text surfaced to users.
type ValidationError struct {
	PluginID string
	Table    string
	Column   string
	// Value and Category are set for ErrMalformedDeleteValue.
	Value    string
	Category string
	// Kind is one of the validation sentinels.
	Kind  error
	Cause error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrUnsupportedColumnType:
		return fmt.Sprintf("%s: the logical-delete column (%s) of %s has a type outside the supported range (use a numeric, string, or boolean column)", e.PluginID, e.Column, e.Table)
	case ErrColumnNotFound:
		return fmt.Sprintf("%s: %s has no column matching the configured logical-delete column (%s)", e.PluginID, e.Table, e.Column)
	case ErrMissingDeleteValue:
		return fmt.Sprintf("%s: %s has no configured logical-delete value; configure logicalDeleteValue and logicalUnDeleteValue globally or per table", e.PluginID, e.Table)
	case ErrMalformedDeleteValue:
		return fmt.Sprintf("%s: the logical-delete value (%s) of %s is not a valid %s literal", e.PluginID, e.Value, e.Table, e.Category)
	default:
		return fmt.Sprintf("%s: %s: %v", e.PluginID, e.Table, e.Kind)
	}
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the kind of the ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == e.Kind
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("logicaldelete: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("logicaldelete: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "mapper", "snapshot", "cleanup"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("logicaldelete: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsValidationError reports whether the error is a ValidationError.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
