package idsparse

import (
	"errors"
	"fmt"
)

// Parse failure reasons. A *ParseError wraps exactly one of these.
var (
	// ErrMalformedID indicates an ID token that is not hex of the required width.
	ErrMalformedID = errors.New("malformed hex ID")

	// ErrSeparator indicates the two-space separator before the name is missing.
	ErrSeparator = errors.New("missing name separator")

	// ErrIndent indicates indentation other than zero, one or two tabs.
	ErrIndent = errors.New("invalid indentation")

	// ErrOrphan indicates a child line before any parent of the required depth.
	ErrOrphan = errors.New("record without parent")

	// ErrTruncated indicates a line that ends before the record is complete.
	ErrTruncated = errors.New("truncated record")

	// ErrRead indicates the underlying reader failed.
	ErrRead = errors.New("read failed")
)

// ParseError locates a parse failure in the source text.
type ParseError struct {
	Line     int
	Expected string
	Found    string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("pci.ids: %v", e.Err)
	}
	return fmt.Sprintf("pci.ids line %d: %v: expected %s, found %q", e.Line, e.Err, e.Expected, e.Found)
}

func (e *ParseError) Unwrap() error { return e.Err }
