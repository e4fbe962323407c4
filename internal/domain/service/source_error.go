package service

import (
	"fmt"

	"lunchradar/internal/errors"
)

// Kinds of failure reported by the external restaurant sources. They are all recoverable.
var (
	// ErrTransport is a network, connectivity or non-success status failure.
	ErrTransport = errors.New("transport failure")
	// ErrNotFound is returned when the source has no match for the query.
	ErrNotFound = errors.New("no match")
	// ErrMalformedResponse is returned when the payload misses expected fields or cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrMalformedRequest is returned when the query is rejected before being sent.
	ErrMalformedRequest = errors.New("malformed request")
)

// SourceError is the uniform error reported by the geo search and detail enrichment adapters.
type SourceError struct {
	Source string // "geosearch", "enrichment", ...
	Kind   error  // one of the Err* kinds above
	Cause  error  // underlying cause, may be nil
}

// NewSourceError builds a SourceError.
func NewSourceError(source string, kind, cause error) *SourceError {
	return &SourceError{Source: source, Kind: kind, Cause: cause}
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %v", e.Source, e.Kind)
	}

	return fmt.Sprintf("%s: %v: %v", e.Source, e.Kind, e.Cause)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *SourceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}
