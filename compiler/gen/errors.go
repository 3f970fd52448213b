// Package gen assembles generated repository implementations for loaded
// contracts.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("repogen: missing configuration")
	// ErrInvalidContract indicates malformed contract information.
	ErrInvalidContract = errors.New("repogen: invalid contract")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("repogen: code generation failed")
	// ErrCustomizationFailed indicates a customization hook failure.
	ErrCustomizationFailed = errors.New("repogen: customization failed")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("repogen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("repogen: config error for %q: %s", e.Option, e.Message)
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

// ContractError represents malformed contract information.
type ContractError struct {
	Contract string
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	var b strings.Builder
	b.WriteString("repogen: contract error")
	if e.Contract != "" {
		b.WriteString(" on ")
		b.WriteString(e.Contract)
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
func (e *ContractError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ContractError.
func (e *ContractError) Is(target error) bool {
	return target == ErrInvalidContract
}

// NewContractError creates a new ContractError.
func NewContractError(contract, message string, cause error) *ContractError {
	return &ContractError{
		Contract: contract,
		Message:  message,
		Cause:    cause,
	}
}

// GenerationError represents a code generation failure for one method of
// one contract.
type GenerationError struct {
	Contract string
	Method   string // offending method signature, if any
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("repogen: generation error")
	if e.Contract != "" {
		b.WriteString(" on contract ")
		b.WriteString(e.Contract)
	}
	if e.Method != "" {
		b.WriteString(" (method: ")
		b.WriteString(e.Method)
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
func NewGenerationError(contract, method, message string, cause error) *GenerationError {
	return &GenerationError{
		Contract: contract,
		Method:   method,
		Message:  message,
		Cause:    cause,
	}
}

// CustomizationError represents a failure inside a customization hook.
type CustomizationError struct {
	Contract string
	Hook     string // "constructor", "method" or "file"
	Cause    error
}

// Error implements the error interface.
func (e *CustomizationError) Error() string {
	var b strings.Builder
	b.WriteString("repogen: customization error")
	if e.Hook != "" {
		b.WriteString(" in ")
		b.WriteString(e.Hook)
		b.WriteString(" hook")
	}
	if e.Contract != "" {
		b.WriteString(" on contract ")
		b.WriteString(e.Contract)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *CustomizationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for CustomizationError.
func (e *CustomizationError) Is(target error) bool {
	return target == ErrCustomizationFailed
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsContractError reports whether the error is a ContractError.
func IsContractError(err error) bool {
	var contractErr *ContractError
	return errors.As(err, &contractErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsCustomizationError reports whether the error is a CustomizationError.
func IsCustomizationError(err error) bool {
	var custErr *CustomizationError
	return errors.As(err, &custErr)
}
