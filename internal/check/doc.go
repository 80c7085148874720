// Package check is the configuration verifier. It turns the unverified
// config.Model produced by a front-end into a canonical model.App, or fails
// with a structured Error naming the offending task or resource and the rule
// it violated.
//
// Task-level rules (kind classification, defaulting, field validity) run per
// task; the resource-sharing invariants run once over the assembled
// application. Verification is all-or-nothing: nothing downstream ever sees
// a partially verified model.
package check
