package integrationtests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/buildconfgo/internal/testutil"
)

func TestPlanning_FailedProfileDoesNotAbortOthers(t *testing.T) {
	t.Parallel()

	// The "test" profile has no matching source set in the project, so its
	// planning must fail while "main" is generated normally.
	result := testutil.RunApp(t, map[string]string{
		"main.hcl": `
project {
  name    = "demo"
  version = "1.0"
}

profile "main" {
  field "FOO" {
    type  = string
    value = "bar"
  }
}

profile "test" {
  field "UNREACHABLE" {
    type  = string
    value = "never generated"
  }
}
`,
	})
	require.NoError(t, result.Err, "a single failed profile must not fail the run")

	mainPath := filepath.Join(result.BuildDir, "gen", "buildconfig", "main", "BuildConfig.java")
	_, err := os.Stat(mainPath)
	require.NoError(t, err, "the valid profile must still be generated")

	graph := result.App.System().Graph
	_, ok := graph.Step("generateTestBuildConfig")
	assert.False(t, ok, "the failed profile must not reach the build graph")

	assert.Contains(t, result.LogOutput, "Skipping profile")
	assert.Contains(t, result.LogOutput, "profile=test")
	assert.Contains(t, result.LogOutput, "source set")
}

func TestPlanning_UnsupportedCharsetFailsOnlyThatProfile(t *testing.T) {
	t.Parallel()

	// A charset the encoder cannot resolve is a configuration error; it must
	// fail the declaring profile at plan time and leave the other profile's
	// output intact.
	result := testutil.RunApp(t, map[string]string{
		"main.hcl": `
project {
  name        = "demo"
  version     = "1.0"
  source_sets = ["test"]
}

profile "main" {
  charset = "no-such-charset"

  field "FOO" {
    type  = string
    value = "bar"
  }
}

profile "test" {
  field "FLAG" {
    type  = bool
    value = true
  }
}
`,
	})
	require.NoError(t, result.Err, "logs:\n%s", result.LogOutput)

	testPath := filepath.Join(result.BuildDir, "gen", "buildconfig", "test", "BuildConfig.java")
	_, err := os.Stat(testPath)
	require.NoError(t, err, "the valid profile must still be generated")

	mainPath := filepath.Join(result.BuildDir, "gen", "buildconfig", "main", "BuildConfig.java")
	_, err = os.Stat(mainPath)
	assert.True(t, os.IsNotExist(err), "the bad-charset profile must not produce output")

	graph := result.App.System().Graph
	_, ok := graph.Step("generateBuildConfig")
	assert.False(t, ok, "the bad-charset profile must not reach the build graph")

	assert.Contains(t, result.LogOutput, "Skipping profile")
	assert.Contains(t, result.LogOutput, "unsupported charset")
}

func TestPlanning_AllProfilesFailedFailsTheRun(t *testing.T) {
	t.Parallel()

	// An invalid field identifier in the only profile leaves nothing to plan.
	result := testutil.RunApp(t, map[string]string{
		"main.hcl": `
project {
  name = "demo"
}

profile "main" {
  field "1BAD" {
    type  = string
    value = "x"
  }
}
`,
	})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "no profile could be planned")
	assert.Contains(t, result.Err.Error(), `"1BAD"`)
}
