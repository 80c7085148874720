// Package model defines the canonical, verified representation of a
// preemptive real-time application: its tasks, shared resources, and the
// privileged init/idle phases. A model.App is only produced by the check
// package; downstream consumers (ceiling computation, code generation)
// treat it as immutable.
package model
