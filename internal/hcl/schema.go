package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top-level content an application description file may
// contain. Files found under one path are merged into a single description,
// so any block may live in any file.
type fileRoot struct {
	Device    *string          `hcl:"device,optional"`
	Init      *phaseBlock      `hcl:"init,block"`
	Idle      *phaseBlock      `hcl:"idle,block"`
	Resources []*resourceBlock `hcl:"resource,block"`
	Tasks     []*taskBlock     `hcl:"task,block"`
}

// phaseBlock is the body of an `init` or `idle` block.
type phaseBlock struct {
	Resources []string `hcl:"resources,optional"`
}

// resourceBlock declares one piece of shared state. The initializer is kept
// as a raw expression here; the loader evaluates it during translation.
type resourceBlock struct {
	Name string         `hcl:"name,label"`
	Init hcl.Expression `hcl:"init,optional"`
}

// taskBlock declares one task. All attributes except the label are optional
// at this layer; required-ness and defaulting are verifier rules, and the
// pointer fields keep "absent" distinguishable from "set to the default".
type taskBlock struct {
	Name      string   `hcl:"name,label"`
	Handler   *string  `hcl:"handler,optional"`
	Priority  *int     `hcl:"priority,optional"`
	Enabled   *bool    `hcl:"enabled,optional"`
	Resources []string `hcl:"resources,optional"`
}
