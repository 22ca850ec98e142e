// Package extraction normalizes uploaded and remote business documents into plain text.
package extraction

import "fmt"

// ExtractionError represents a local source that could not be read or decoded
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError represents a file format with no extraction variant
type UnsupportedFormatError struct {
	Format  string
	Message string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q: %s", e.Format, e.Message)
}

// RemoteAccessError represents a transport or permission failure while
// fetching a Google Docs or Sheets resource
type RemoteAccessError struct {
	Message string
	Cause   error
}

func (e *RemoteAccessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("remote access error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("remote access error: %s", e.Message)
}

func (e *RemoteAccessError) Unwrap() error {
	return e.Cause
}
