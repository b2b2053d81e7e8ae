package integrationtests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/buildconfgo/internal/testutil"
)

func TestGenerate_FromYAML(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, map[string]string{
		"buildconfig.yaml": `
project:
  name: demo
  group: com.example
  version: "2.0"
profiles:
  - name: main
    package_name: com.example.generated
    class_name: Constants
    fields:
      - name: API_URL
        type: string
        value: https://api.example.com
      - name: RETRIES
        type: int
        value: 3
`,
	})
	require.NoError(t, result.Err, "logs:\n%s", result.LogOutput)

	outPath := filepath.Join(result.BuildDir, "gen", "buildconfig", "main", "Constants.java")
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	src := string(data)
	assert.Contains(t, src, "package com.example.generated;")
	assert.Contains(t, src, "public final class Constants {")
	assert.Contains(t, src, `public static final String NAME = "demo";`)
	assert.Contains(t, src, `public static final String VERSION = "2.0";`)
	assert.Contains(t, src, `public static final String API_URL = "https://api.example.com";`)
	assert.Contains(t, src, "public static final int RETRIES = 3;")
}
