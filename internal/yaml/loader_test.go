package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/buildconfgo/internal/profile"
	"github.com/zclconf/go-cty/cty"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buildconfig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
project:
  name: demo
  group: com.example
  version: "1.0"
  source_sets: [main, test]
profiles:
  - name: main
    fields:
      - name: FOO
        type: string
        value: bar
      - name: DEBUG
        type: bool
        value: true
      - name: TIMEOUT_MS
        type: long
        value: 42
      - name: LEVEL
        type: raw
        of: com.example.Level
        value: com.example.Level.HIGH
  - name: test
    class_name: TestConfig
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, model.Project)
	assert.Equal(t, "demo", model.Project.Name)
	assert.Equal(t, "com.example", model.Project.Group)
	assert.Equal(t, "1.0", model.Project.Version)
	assert.Equal(t, []string{"main", "test"}, model.Project.SourceSets)

	require.Len(t, model.Profiles, 2)
	p := model.Profiles[0]
	require.Len(t, p.Fields, 4)

	assert.Equal(t, string(profile.TypeString), p.Fields[0].Type)
	assert.True(t, p.Fields[0].Value.RawEquals(cty.StringVal("bar")))

	assert.Equal(t, string(profile.TypeBoolean), p.Fields[1].Type)
	assert.True(t, p.Fields[1].Value.RawEquals(cty.True))

	assert.Equal(t, string(profile.TypeLong), p.Fields[2].Type)

	level := p.Fields[3]
	assert.True(t, level.Raw)
	assert.Equal(t, "com.example.Level", level.Type)

	assert.Equal(t, "TestConfig", model.Profiles[1].ClassName)
}

func TestLoad_UnknownFieldType(t *testing.T) {
	path := writeConfig(t, `
profiles:
  - name: main
    fields:
      - name: X
        type: float
        value: 1
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field type "float"`)
}

func TestLoad_RawRequiresOf(t *testing.T) {
	path := writeConfig(t, `
profiles:
  - name: main
    fields:
      - name: LEVEL
        type: raw
        value: com.example.Level.HIGH
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires an `of` entry")
}

func TestLoad_MissingValue(t *testing.T) {
	path := writeConfig(t, `
profiles:
  - name: main
    fields:
      - name: X
        type: string
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing value")
}

func TestLoad_ProfileWithoutName(t *testing.T) {
	path := writeConfig(t, `
profiles:
  - package_name: com.example
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a name")
}
