// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package markup

import "fmt"

// ErrorKind classifies parse failures. All of them are load-time
// fatal: a document that fails to parse never reaches the runtime.
type ErrorKind int

const (
	// Malformed covers structural problems: XML syntax errors,
	// mismatched or unclosed tags, elements in impossible positions.
	Malformed ErrorKind = iota
	// DuplicateID means two nodes share an id attribute.
	DuplicateID
	// UnknownTag means an element outside the fixed vocabulary.
	UnknownTag
	// InvalidConstraint means a constraint attribute that does not
	// parse under the constraint grammar.
	InvalidConstraint
)

// String names the kind for error messages.
func (k ErrorKind) String() string {
	switch k {
	case Malformed:
		return "malformed document"
	case DuplicateID:
		return "duplicate id"
	case UnknownTag:
		return "unknown tag"
	case InvalidConstraint:
		return "invalid constraint"
	default:
		return "parse error"
	}
}

// Error is a parse failure with its classification and, when the
// decoder position is known, the line it occurred on.
type Error struct {
	Kind    ErrorKind
	Line    int
	message string
	wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.message)
}

// Unwrap exposes the underlying decoder or constraint error, if any.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// parseError builds an *Error with a formatted message.
func parseError(kind ErrorKind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, message: fmt.Sprintf(format, args...)}
}
