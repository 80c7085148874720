package config

import "github.com/zclconf/go-cty/cty"

// Model is the unverified application description: the device token, the
// init/idle claim sets, and the name-keyed resource and task declarations.
type Model struct {
	Device    string
	Init      Phase
	Idle      Phase
	Resources map[string]*Resource
	Tasks     map[string]*Task
}

// Phase carries the resource claims of the init or idle block.
type Phase struct {
	Resources []string
}

// Resource is a declared piece of shared state. Initializer is nil when the
// declaration carried no initial value; when present it has already been
// evaluated down to a literal by the loader.
type Resource struct {
	Name        string
	Initializer *cty.Value
}

// Task is a raw task declaration. Optional fields are pointers so that
// "absent" and "explicitly set to the default" stay distinguishable — the
// verifier rejects the latter where stating the default is redundant.
type Task struct {
	Name      string
	Handler   string // empty when the declaration omitted it
	Priority  *int
	Enabled   *bool
	Resources []string
}
