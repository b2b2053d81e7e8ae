package host

import "fmt"

// Deferred is a lazily computed metadata value. The host may nest these;
// consumers unwrap them repeatedly via profile.ResolveString.
type Deferred = func() any

// SourceSet is a named compilation unit known to the project.
type SourceSet struct {
	Name string
}

// Configuration is a dependency-registration target. Compiled build-config
// output is attached to it as a consumable artifact.
type Configuration struct {
	Name      string
	artifacts []string
}

// AddArtifact registers a file-set handle (a directory) as a consumable
// dependency on this configuration. Registering the same directory again is
// a no-op, so re-planning an already registered profile cannot duplicate it.
func (c *Configuration) AddArtifact(dir string) {
	for _, existing := range c.artifacts {
		if existing == dir {
			return
		}
	}
	c.artifacts = append(c.artifacts, dir)
}

// Artifacts returns the registered artifact directories in registration order.
func (c *Configuration) Artifacts() []string {
	out := make([]string, len(c.artifacts))
	copy(out, c.artifacts)
	return out
}

// Project is the in-process model of the host project: metadata plus the
// source sets and configurations the planner resolves profiles against.
type Project struct {
	name    string
	group   any
	version any

	sourceSets     map[string]*SourceSet
	configurations map[string]*Configuration
}

// NewProject creates a project with the given metadata. Group and version
// may be strings, nil, or Deferred values.
func NewProject(name string, group, version any) *Project {
	return &Project{
		name:           name,
		group:          group,
		version:        version,
		sourceSets:     make(map[string]*SourceSet),
		configurations: make(map[string]*Configuration),
	}
}

// ProjectName implements profile.ProjectMeta.
func (p *Project) ProjectName() string { return p.name }

// ProjectGroup implements profile.ProjectMeta.
func (p *Project) ProjectGroup() any { return p.group }

// ProjectVersion implements profile.ProjectMeta.
func (p *Project) ProjectVersion() any { return p.version }

// SetGroup replaces the project group. Configuration code may mutate
// metadata up until planning starts; resolution happens late enough to see it.
func (p *Project) SetGroup(group any) { p.group = group }

// SetVersion replaces the project version.
func (p *Project) SetVersion(version any) { p.version = version }

// AddSourceSet declares a compilation unit. Adding the same name twice
// returns the existing source set.
func (p *Project) AddSourceSet(name string) *SourceSet {
	if ss, ok := p.sourceSets[name]; ok {
		return ss
	}
	ss := &SourceSet{Name: name}
	p.sourceSets[name] = ss
	return ss
}

// AddConfiguration declares a dependency-registration target. Adding the
// same name twice returns the existing configuration.
func (p *Project) AddConfiguration(name string) *Configuration {
	if c, ok := p.configurations[name]; ok {
		return c
	}
	c := &Configuration{Name: name}
	p.configurations[name] = c
	return c
}

// SourceSet looks up a named compilation unit.
func (p *Project) SourceSet(name string) (*SourceSet, error) {
	ss, ok := p.sourceSets[name]
	if !ok {
		return nil, fmt.Errorf("source set %q not found in project %q", name, p.name)
	}
	return ss, nil
}

// Configuration looks up a named dependency-registration target.
func (p *Project) Configuration(name string) (*Configuration, error) {
	c, ok := p.configurations[name]
	if !ok {
		return nil, fmt.Errorf("configuration %q not found in project %q", name, p.name)
	}
	return c, nil
}
