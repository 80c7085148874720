package model

import "fmt"

// Kind is the closed variant over a task's hardware binding. Exactly two
// implementations exist, ExceptionKind and InterruptKind; consumers dispatch
// with a type switch covering both so that a new kind breaks every consumer
// at compile time rather than silently falling through.
type Kind interface {
	isKind()
	fmt.Stringer
}

// ExceptionKind binds a task to a platform-reserved exception vector.
// Exceptions are not individually maskable, so there is no enabled flag.
type ExceptionKind struct {
	Exception Exception
}

// InterruptKind binds a task to a vendor-defined interrupt line.
type InterruptKind struct {
	Enabled bool
}

func (ExceptionKind) isKind() {}
func (InterruptKind) isKind() {}

func (k ExceptionKind) String() string {
	return fmt.Sprintf("exception (vector %d)", k.Exception.Number())
}

func (k InterruptKind) String() string {
	if k.Enabled {
		return "interrupt (enabled)"
	}
	return "interrupt (disabled)"
}
