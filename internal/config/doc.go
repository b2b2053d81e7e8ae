// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from various
// sources. The model is the single source of truth the app uses to set up
// the host project and populate the profile registry; concrete loader
// implementations (HCL, YAML) live in separate packages.
package config
