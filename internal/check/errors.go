package check

import (
	"errors"
	"fmt"
)

// Kind classifies a verification failure.
type Kind uint8

const (
	// MissingField: a required attribute is absent from a task declaration.
	MissingField Kind = iota + 1
	// InvalidField: an attribute is present that the task's kind forbids.
	InvalidField
	// RedundantDefault: an attribute is explicitly set to its default value.
	RedundantDefault
	// UnknownResource: a claim names a resource that was never declared.
	UnknownResource
	// ResourceNotInitialized: init claims a resource with no initial value.
	ResourceNotInitialized
	// ResourceConflict: a resource is claimed by init and by another phase
	// or task.
	ResourceConflict
	// UnusedResource: a declared resource is claimed by nothing.
	UnusedResource
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case InvalidField:
		return "invalid field"
	case RedundantDefault:
		return "redundant default"
	case UnknownResource:
		return "unknown resource"
	case ResourceNotInitialized:
		return "resource not initialized"
	case ResourceConflict:
		return "resource conflict"
	case UnusedResource:
		return "unused resource"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is a single violated configuration rule, attributed to the task or
// resource that violated it. Outer layers add phase context by wrapping with
// fmt.Errorf and %w; the Error stays reachable through errors.As.
type Error struct {
	Kind   Kind
	Entity string // offending task or resource name
	msg    string
}

func newErrorf(kind Kind, entity, format string, args ...any) *Error {
	return &Error{Kind: kind, Entity: entity, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.msg }

// KindOf extracts the failure kind from err, unwrapping as needed. It
// returns 0 when err carries no check.Error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}
