package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.Equal(t, 1, r.Len(), "the default profile should exist implicitly")

	main := r.Register(MainProfile)
	assert.Equal(t, MainProfile, main.Name())
}

func TestRegister_Accumulates(t *testing.T) {
	r := NewRegistry()

	p := r.Register("test")
	p.SetField("FOO", TypeString, false, cty.StringVal("bar"))

	// A second Register call against the same name must return the same
	// profile so configuration accumulates.
	again := r.Register("test")
	again.SetField("BAZ", TypeInt, false, cty.NumberIntVal(1))

	fields := p.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "FOO", fields[0].Name)
	assert.Equal(t, "BAZ", fields[1].Name)
	assert.Equal(t, 2, r.Len())
}

func TestSetField_RedeclarationKeepsPosition(t *testing.T) {
	r := NewRegistry()
	p := r.Register(MainProfile)

	p.SetField("A", TypeString, false, cty.StringVal("first"))
	p.SetField("B", TypeString, false, cty.StringVal("second"))
	p.SetField("A", TypeInt, false, cty.NumberIntVal(3))

	fields := p.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "A", fields[0].Name, "re-declaration must not move the field")
	assert.Equal(t, TypeInt, fields[0].Type, "re-declaration must replace the value")
	assert.Equal(t, "B", fields[1].Name)
}

func TestSnapshot_IsDefensiveCopy(t *testing.T) {
	r := NewRegistry()
	p := r.Register(MainProfile)
	p.SetField("FOO", TypeString, false, cty.StringVal("bar"))

	snapshot := r.Snapshot()
	require.Len(t, snapshot, 1)

	// Mutations after the snapshot must not be visible inside it.
	p.SetField("LATE", TypeString, false, cty.StringVal("too late"))
	p.SetAppName("changed")

	assert.Len(t, snapshot[0].Fields(), 1)
}

func TestSnapshot_PreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("integration")
	r.Register("test")

	snapshot := r.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, MainProfile, snapshot[0].Name())
	assert.Equal(t, "integration", snapshot[1].Name())
	assert.Equal(t, "test", snapshot[2].Name())
}
