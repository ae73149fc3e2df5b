// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ConfigError represents a fatal configuration error.
// It is the only error class that propagates out of the core.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error on field '%s': %s", e.Field, e.Message)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// StrategyError represents a recoverable failure inside one strategy.
// The engine logs it and continues with the remaining strategies.
type StrategyError struct {
	Strategy string
	Message  string
}

// Error implements the error interface
func (e *StrategyError) Error() string {
	return fmt.Sprintf("strategy error in %s: %s", e.Strategy, e.Message)
}

// IsConfig checks if an error is a ConfigError
func IsConfig(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsStrategy checks if an error is a StrategyError
func IsStrategy(err error) bool {
	var strategyErr *StrategyError
	return errors.As(err, &strategyErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
