package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_SourceSetLookup(t *testing.T) {
	p := NewProject("demo", nil, nil)
	p.AddSourceSet("main")

	ss, err := p.SourceSet("main")
	require.NoError(t, err)
	assert.Equal(t, "main", ss.Name)

	_, err = p.SourceSet("test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `source set "test" not found`)
}

func TestProject_ConfigurationLookup(t *testing.T) {
	p := NewProject("demo", nil, nil)
	p.AddConfiguration("compile")

	c, err := p.Configuration("compile")
	require.NoError(t, err)
	assert.Equal(t, "compile", c.Name)

	_, err = p.Configuration("testCompile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `configuration "testCompile" not found`)
}

func TestProject_AddIsIdempotent(t *testing.T) {
	p := NewProject("demo", nil, nil)
	first := p.AddSourceSet("main")
	second := p.AddSourceSet("main")
	assert.Same(t, first, second)

	c1 := p.AddConfiguration("compile")
	c2 := p.AddConfiguration("compile")
	assert.Same(t, c1, c2)
}

func TestProject_MetadataAccessors(t *testing.T) {
	version := func() any { return "1.0" }
	p := NewProject("demo", "com.example", version)

	assert.Equal(t, "demo", p.ProjectName())
	assert.Equal(t, "com.example", p.ProjectGroup())
	assert.NotNil(t, p.ProjectVersion())

	// Late metadata mutation is visible to later readers.
	p.SetGroup("org.acme")
	assert.Equal(t, "org.acme", p.ProjectGroup())
}
