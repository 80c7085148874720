package model

import "fmt"

// Exception identifies one of the platform-reserved exception vectors a task
// may bind to. The set is closed: the names and vector numbers below are
// fixed by the platform profile, never by the application.
type Exception int

const (
	SVCall Exception = iota
	PendSV
	SysTick
)

var exceptionNames = map[string]Exception{
	"SVCALL":   SVCall,
	"PENDSV":   PendSV,
	"SYS_TICK": SysTick,
}

// ExceptionFromName returns the reserved exception matching name. The second
// result is false when the name is not reserved, which callers read as "this
// task binds to an interrupt instead" — classification is total, a miss is
// not an error.
func ExceptionFromName(name string) (Exception, bool) {
	e, ok := exceptionNames[name]
	return e, ok
}

// Number returns the platform-reserved vector number of the exception.
func (e Exception) Number() int {
	switch e {
	case SVCall:
		return 11
	case PendSV:
		return 14
	case SysTick:
		return 15
	}
	panic(fmt.Sprintf("model: unknown exception %d", int(e)))
}

func (e Exception) String() string {
	switch e {
	case SVCall:
		return "SVCALL"
	case PendSV:
		return "PENDSV"
	case SysTick:
		return "SYS_TICK"
	}
	return fmt.Sprintf("Exception(%d)", int(e))
}
