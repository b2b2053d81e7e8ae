package host

import "fmt"

// Step is a registered build step. Config carries the typed configuration
// properties supplied at registration time; the graph itself treats it as
// opaque, the way a task container holds arbitrary task types.
type Step struct {
	Name      string
	DependsOn string
	Config    any
}

// Graph is the host's step store. Registration is idempotent by name, and
// registration order is preserved so a generation step always precedes the
// compilation step that depends on it.
type Graph struct {
	steps map[string]*Step
	order []string
}

// NewGraph creates an empty step graph.
func NewGraph() *Graph {
	return &Graph{steps: make(map[string]*Step)}
}

// AddStep registers a uniquely named step with an optional upstream
// dependency. Registering an already-known name is a no-op, which makes
// re-planning within a configuration pass safe. The upstream step must
// already be registered.
func (g *Graph) AddStep(name, dependsOn string, config any) error {
	if name == "" {
		return fmt.Errorf("step name must not be empty")
	}
	if _, ok := g.steps[name]; ok {
		return nil
	}
	if dependsOn != "" {
		if _, ok := g.steps[dependsOn]; !ok {
			return fmt.Errorf("step %q depends on unregistered step %q", name, dependsOn)
		}
	}
	g.steps[name] = &Step{Name: name, DependsOn: dependsOn, Config: config}
	g.order = append(g.order, name)
	return nil
}

// Step returns the registered step with the given name, if any.
func (g *Graph) Step(name string) (*Step, bool) {
	s, ok := g.steps[name]
	return s, ok
}

// Steps returns all registered steps in registration order.
func (g *Graph) Steps() []*Step {
	out := make([]*Step, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.steps[name])
	}
	return out
}

// Len reports the number of registered steps.
func (g *Graph) Len() int { return len(g.order) }

// System bundles a project with its step graph, presenting the complete
// host surface the planner registers against.
type System struct {
	*Project
	Graph *Graph
}

// NewSystem wraps a project together with a fresh step graph.
func NewSystem(p *Project) *System {
	return &System{Project: p, Graph: NewGraph()}
}

// LookupSourceSet reports whether the named compilation unit exists.
func (s *System) LookupSourceSet(name string) error {
	_, err := s.Project.SourceSet(name)
	return err
}

// LookupDependencyTarget reports whether the named dependency target exists.
func (s *System) LookupDependencyTarget(name string) error {
	_, err := s.Project.Configuration(name)
	return err
}

// RegisterStep registers a step with the host's step graph.
func (s *System) RegisterStep(name, dependsOn string, config any) error {
	return s.Graph.AddStep(name, dependsOn, config)
}

// RegisterArtifact attaches a directory as a consumable artifact on the
// given dependency target.
func (s *System) RegisterArtifact(target, dir string) error {
	c, err := s.Project.Configuration(target)
	if err != nil {
		return err
	}
	c.AddArtifact(dir)
	return nil
}
