// Package host models the surrounding build system at its interface
// boundary: project metadata (with possibly deferred group/version values),
// named source sets, dependency-registration targets, and an
// idempotent-by-name step graph. The planner talks to this surface through
// the interfaces it defines; this package provides the in-process
// implementation used by the CLI and by tests.
package host
