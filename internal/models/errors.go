package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrDescriptor ErrorType = iota
	ErrLayout
	ErrToolExec
	ErrSigning
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrDescriptor:
		return "Descriptor"
	case ErrLayout:
		return "Layout"
	case ErrToolExec:
		return "ToolExec"
	case ErrSigning:
		return "Signing"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// PackError represents an error during package building
type PackError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *PackError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *PackError) Unwrap() error {
	return e.Err
}
