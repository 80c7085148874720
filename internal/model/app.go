package model

import (
	"maps"
	"slices"

	"github.com/zclconf/go-cty/cty"
)

// DefaultPriority is assigned to tasks that do not declare a priority.
const DefaultPriority = 1

// App is the root of a verified application. Resources and Tasks are keyed
// by name; every cross-reference between them has been validated by the
// time an App exists.
type App struct {
	Device    string
	Init      Phase
	Idle      Phase
	Resources map[string]*Resource
	Tasks     map[string]*Task
}

// Phase is one of the two privileged execution phases, init or idle,
// together with the resource claims it holds. Init runs once, sequentially,
// before any task is eligible; idle runs forever below every task priority.
type Phase struct {
	Resources []string
}

// Claims reports whether the phase claims the named resource.
func (p Phase) Claims(name string) bool {
	return slices.Contains(p.Resources, name)
}

// Resource is a named piece of statically allocated shared state.
// Initializer is nil when the declaration carried no initial value.
type Resource struct {
	Name        string
	Initializer *cty.Value
}

// Task is a unit of preemptible work bound to a hardware event.
type Task struct {
	Name      string
	Kind      Kind
	Handler   string
	Priority  int
	Resources []string
}

// Claims reports whether the task claims the named resource.
func (t *Task) Claims(name string) bool {
	return slices.Contains(t.Resources, name)
}

// TaskNames returns the task names in sorted order, for deterministic
// iteration and diagnostics.
func (a *App) TaskNames() []string {
	return slices.Sorted(maps.Keys(a.Tasks))
}

// ResourceNames returns the resource names in sorted order.
func (a *App) ResourceNames() []string {
	return slices.Sorted(maps.Keys(a.Resources))
}
