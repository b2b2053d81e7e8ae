package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddStep(t *testing.T) {
	g := NewGraph()

	require.NoError(t, g.AddStep("generateBuildConfig", "", "gen-config"))
	require.NoError(t, g.AddStep("compileBuildConfig", "generateBuildConfig", "compile-config"))

	steps := g.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, "generateBuildConfig", steps[0].Name)
	assert.Equal(t, "compileBuildConfig", steps[1].Name)
	assert.Equal(t, "generateBuildConfig", steps[1].DependsOn)
}

func TestGraph_AddStepIsIdempotentByName(t *testing.T) {
	g := NewGraph()

	require.NoError(t, g.AddStep("generateBuildConfig", "", "first"))
	require.NoError(t, g.AddStep("generateBuildConfig", "", "second"))

	assert.Equal(t, 1, g.Len())
	step, ok := g.Step("generateBuildConfig")
	require.True(t, ok)
	assert.Equal(t, "first", step.Config, "repeat registration must not overwrite")
}

func TestGraph_AddStepErrors(t *testing.T) {
	g := NewGraph()

	err := g.AddStep("", "", nil)
	assert.ErrorContains(t, err, "must not be empty")

	err = g.AddStep("compileBuildConfig", "generateBuildConfig", nil)
	assert.ErrorContains(t, err, "unregistered step")
}

func TestSystem_RegisterArtifact(t *testing.T) {
	p := NewProject("demo", nil, nil)
	p.AddConfiguration("compile")
	s := NewSystem(p)

	require.NoError(t, s.RegisterArtifact("compile", "build/classes/buildconfig/main"))

	c, err := p.Configuration("compile")
	require.NoError(t, err)
	assert.Equal(t, []string{"build/classes/buildconfig/main"}, c.Artifacts())

	// Registering the same directory again must not duplicate it.
	require.NoError(t, s.RegisterArtifact("compile", "build/classes/buildconfig/main"))
	assert.Equal(t, []string{"build/classes/buildconfig/main"}, c.Artifacts())

	err = s.RegisterArtifact("missing", "dir")
	assert.Error(t, err)
}

func TestSystem_Lookups(t *testing.T) {
	p := NewProject("demo", nil, nil)
	p.AddSourceSet("main")
	p.AddConfiguration("compile")
	s := NewSystem(p)

	assert.NoError(t, s.LookupSourceSet("main"))
	assert.Error(t, s.LookupSourceSet("test"))
	assert.NoError(t, s.LookupDependencyTarget("compile"))
	assert.Error(t, s.LookupDependencyTarget("testCompile"))
}
