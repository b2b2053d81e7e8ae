// Package profile defines the build-config profile model: a named bundle of
// typed constant fields plus the class/package/app/version/charset options
// that shape one generated constants class.
//
// Profiles are mutable while configuration is being applied, collected in a
// Registry, and turned into immutable Resolved snapshots (with all defaults
// applied against the enclosing project's metadata) at the moment the planner
// consumes them. Resolution is deliberately late so that configuration code
// mutating project metadata after declaring a profile is still honored.
package profile
