// Package engine runs the two AI stages of the pipeline: analyzing extracted
// document text and generating the full BRD from that analysis.
package engine

import "fmt"

// InvalidInputError represents empty or missing stage input
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// ParseError represents an AI completion that is not valid structured data
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// AnalysisServiceError represents a failed AI call during the analysis stage
type AnalysisServiceError struct {
	Message string
	Cause   error
}

func (e *AnalysisServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("analysis service error: %s", e.Message)
}

func (e *AnalysisServiceError) Unwrap() error {
	return e.Cause
}

// GenerationServiceError represents a failed AI call during the BRD
// generation stage
type GenerationServiceError struct {
	Message string
	Cause   error
}

func (e *GenerationServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation service error: %s", e.Message)
}

func (e *GenerationServiceError) Unwrap() error {
	return e.Cause
}
