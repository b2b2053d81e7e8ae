// Package yaml provides the YAML implementation of the configuration Loader
// interface, for projects that keep build-config declarations next to other
// YAML-based pipeline configuration. It produces the same format-agnostic
// model as the HCL loader.
package yaml
