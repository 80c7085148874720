// Package hcl is the HCL front-end for application descriptions. It
// implements config.Loader: it discovers .hcl files, decodes the device
// attribute and the init/idle/resource/task blocks, and merges everything
// into one unverified config.Model.
//
// The loader owns purely structural concerns: syntax, block shape, duplicate
// names, and evaluating initializer expressions down to literals. Everything
// that crosses declaration boundaries is left to the check package.
package hcl
