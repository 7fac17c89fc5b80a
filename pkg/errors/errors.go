package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeFeed represents feed file reading errors
	ErrorTypeFeed ErrorType = "feed"
	// ErrorTypeParsing represents raw item parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeCache represents cache-related errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeExport represents CSV export errors
	ErrorTypeExport ErrorType = "export"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// PipelineError represents a pipeline-specific error
type PipelineError struct {
	Type    ErrorType
	Source  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Source, e.Message)
}

// Unwrap returns the underlying error
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is retryable
func (e *PipelineError) IsRetryable() bool {
	// A missing feed file may appear on the next cycle once the
	// collaborator crawler has written its dump.
	return e.Type == ErrorTypeFeed
}

// New creates a new PipelineError
func New(errType ErrorType, source, message string, err error) *PipelineError {
	return &PipelineError{
		Type:    errType,
		Source:  source,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewFeed creates a new feed error
func NewFeed(source, message string, err error) *PipelineError {
	return New(ErrorTypeFeed, source, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(source, message string, err error) *PipelineError {
	return New(ErrorTypeParsing, source, message, err)
}

// NewValidation creates a new validation error
func NewValidation(source, message string) *PipelineError {
	return New(ErrorTypeValidation, source, message, nil)
}

// NewCache creates a new cache error
func NewCache(source, message string, err error) *PipelineError {
	return New(ErrorTypeCache, source, message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(source, message string, err error) *PipelineError {
	return New(ErrorTypePublisher, source, message, err)
}

// NewExport creates a new export error
func NewExport(source, message string, err error) *PipelineError {
	return New(ErrorTypeExport, source, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *PipelineError {
	return New(ErrorTypeConfiguration, "", message, err)
}
