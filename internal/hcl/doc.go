// Package hcl provides the concrete HCL implementation of the configuration
// Loader interface defined in the `config` package. It is responsible for
// file discovery, parsing, and HCL-to-model translation, including parsing
// field type expressions into the built-in type tags.
package hcl
