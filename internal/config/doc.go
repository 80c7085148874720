// Package config defines the format-agnostic description of a real-time
// application as produced by a front-end loader, before verification has
// run. The config.Model is the input contract of the check package; concrete
// loaders, such as the HCL one, live in separate packages.
//
// Names inside a Model are free text: nothing has been cross-referenced yet.
package config
