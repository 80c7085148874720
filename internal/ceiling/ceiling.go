// Package ceiling computes per-resource lock ceilings over a verified
// application, following the priority ceiling protocol: a resource's ceiling
// is the highest priority among the tasks that claim it, and a critical
// section on the resource must mask preemption up to that ceiling, never
// less. Init sits above every task priority and idle below all of them.
//
// Compute requires a model.App that already passed verification: with
// referential integrity established every claim resolves, and with init
// exclusivity established an init claim is the only claim on its resource.
package ceiling

import (
	"strconv"

	"github.com/vk/rtappgo/internal/model"
)

// Ceiling is the preemption level a critical section on a resource must
// mask. Priority is the highest claiming task priority; Init marks a
// resource owned by the init phase, which outranks every task. A resource
// claimed only by idle keeps priority 0: idle cannot be preempted into, so
// no masking is needed.
type Ceiling struct {
	Priority int
	Init     bool
}

// Covers reports whether the ceiling is at least the given task priority.
func (c Ceiling) Covers(priority int) bool {
	return c.Init || c.Priority >= priority
}

func (c Ceiling) String() string {
	if c.Init {
		return "init"
	}
	return strconv.Itoa(c.Priority)
}

// Compute derives the lock ceiling of every declared resource.
func Compute(app *model.App) map[string]Ceiling {
	ceilings := make(map[string]Ceiling, len(app.Resources))
	for name := range app.Resources {
		ceilings[name] = Ceiling{}
	}
	for _, name := range app.Init.Resources {
		ceilings[name] = Ceiling{Init: true}
	}
	for _, t := range app.Tasks {
		for _, name := range t.Resources {
			c := ceilings[name]
			if !c.Init && t.Priority > c.Priority {
				c.Priority = t.Priority
				ceilings[name] = c
			}
		}
	}
	return ceilings
}
