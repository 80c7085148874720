// Package app is the composition root. It wires a front-end loader to the
// verifier, owns the run lifecycle, and prints the verification report.
package app
