// Package planner wires each profile into the host build graph. For every
// profile it resolves the matching compilation unit and dependency target,
// derives collision-free step names, and registers one generation step and
// one compilation step ordered generation-first, with the compiled output
// exposed as a consumable artifact.
//
// Failures are isolated per profile: a profile that cannot be resolved or
// whose configuration cannot generate is reported and skipped, and planning
// continues with the remaining profiles.
package planner
