package planner

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/vk/buildconfgo/internal/ctxlog"
	"github.com/vk/buildconfgo/internal/gen"
	"github.com/vk/buildconfgo/internal/profile"
)

// Host is the narrow surface of the build system the planner registers
// against. The in-process implementation lives in the host package; tests
// substitute fakes.
type Host interface {
	profile.ProjectMeta

	// LookupSourceSet reports whether the named compilation unit exists.
	LookupSourceSet(name string) error
	// LookupDependencyTarget reports whether the named dependency target exists.
	LookupDependencyTarget(name string) error
	// RegisterStep registers a uniquely named step with an optional upstream
	// dependency and typed configuration. Registration is idempotent by name.
	RegisterStep(name, dependsOn string, config any) error
	// RegisterArtifact attaches a directory as a consumable artifact on the
	// given dependency target.
	RegisterArtifact(target, dir string) error
}

// State tracks a profile's progress through planning. Transitions are
// one-way; a profile that fails stays in the state it reached.
type State int

const (
	Unresolved State = iota
	Resolved
	Planned
	Registered
)

// GenerateConfig is the typed configuration attached to a generation step.
type GenerateConfig struct {
	Profile   *profile.Resolved
	OutputDir string
}

// CompileConfig is the typed configuration attached to a compilation step.
// Classpath is always empty: the generated class has no dependencies.
type CompileConfig struct {
	SourceDir string
	OutputDir string
	Classpath []string
}

// ProfilePlan records the wiring derived for a single profile.
type ProfilePlan struct {
	Profile          *profile.Resolved
	State            State
	GenerateStep     string
	CompileStep      string
	DependencyTarget string
	SourceDir        string
	ClassesDir       string
}

// Plan is the outcome of a planning pass: the successfully registered
// profiles plus one error per failed profile.
type Plan struct {
	Profiles []*ProfilePlan
	Failed   []error
}

// Planner wires profiles into the host build graph. It runs synchronously,
// once, against an immutable snapshot of the profile registry.
type Planner struct {
	logger   *slog.Logger
	host     Host
	buildDir string
}

// New creates a Planner bound to a host and an output root.
func New(logger *slog.Logger, host Host, buildDir string) *Planner {
	return &Planner{logger: logger, host: host, buildDir: buildDir}
}

// Plan processes every profile in the snapshot independently. A failure in
// one profile is recorded and never aborts the others; the returned Plan
// carries both outcomes.
func (p *Planner) Plan(ctx context.Context, profiles []*profile.Profile) *Plan {
	logger := ctxlog.FromContext(ctx)
	plan := &Plan{}

	for _, prof := range profiles {
		pp, err := p.planProfile(prof)
		if err != nil {
			logger.Warn("Skipping profile.", "profile", prof.Name(), "error", err)
			plan.Failed = append(plan.Failed, err)
			continue
		}
		logger.Debug("Profile planned and registered.",
			"profile", pp.Profile.Name,
			"generate_step", pp.GenerateStep,
			"compile_step", pp.CompileStep,
			"dependency_target", pp.DependencyTarget,
		)
		plan.Profiles = append(plan.Profiles, pp)
	}
	return plan
}

func (p *Planner) planProfile(prof *profile.Profile) (*ProfilePlan, error) {
	name := prof.Name()
	pp := &ProfilePlan{State: Unresolved}

	// Defaults resolve now, not earlier, so late mutation of project
	// metadata by configuration code is honored.
	resolved := profile.Finalize(prof, p.host)
	pp.Profile = resolved

	// Configuration errors must surface before anything is registered.
	if err := gen.Validate(resolved); err != nil {
		return nil, err
	}

	if err := p.host.LookupSourceSet(name); err != nil {
		return nil, &ResolutionError{Profile: name, Err: err}
	}
	target := DependencyTargetName(name)
	if err := p.host.LookupDependencyTarget(target); err != nil {
		return nil, &ResolutionError{Profile: name, Err: err}
	}
	pp.State = Resolved
	pp.DependencyTarget = target

	pp.GenerateStep = GenerateStepName(name)
	pp.CompileStep = CompileStepName(name)
	pp.SourceDir = filepath.Join(p.buildDir, "gen", "buildconfig", name)
	pp.ClassesDir = filepath.Join(p.buildDir, "classes", "buildconfig", name)
	pp.State = Planned

	if err := p.host.RegisterStep(pp.GenerateStep, "", &GenerateConfig{
		Profile:   resolved,
		OutputDir: pp.SourceDir,
	}); err != nil {
		return nil, &ResolutionError{Profile: name, Err: err}
	}
	if err := p.host.RegisterStep(pp.CompileStep, pp.GenerateStep, &CompileConfig{
		SourceDir: pp.SourceDir,
		OutputDir: pp.ClassesDir,
		Classpath: []string{},
	}); err != nil {
		return nil, &ResolutionError{Profile: name, Err: err}
	}
	if err := p.host.RegisterArtifact(target, pp.ClassesDir); err != nil {
		return nil, &ResolutionError{Profile: name, Err: err}
	}
	pp.State = Registered

	return pp, nil
}
