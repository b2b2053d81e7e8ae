// Package testutil provides shared helpers for integration tests: a
// thread-safe log buffer and a harness that materializes configuration
// files into a temp directory and runs the app against them.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/buildconfgo/internal/app"
	"github.com/vk/buildconfgo/internal/config"
	"github.com/vk/buildconfgo/internal/hcl"
	"github.com/vk/buildconfgo/internal/yaml"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	BuildDir  string
}

// RunApp writes the given configuration files (relative path → content) into
// a temporary directory, runs the app against them, and captures the result.
// If a .yaml/.yml file is present it is loaded directly with the YAML
// loader; otherwise the whole directory is loaded as HCL.
func RunApp(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	var yamlPath string
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			yamlPath = filePath
		}
	}

	configPath := tmpDir
	var loader config.Loader = hcl.NewLoader()
	if yamlPath != "" {
		configPath = yamlPath
		loader = yaml.NewLoader()
	}

	buildDir := filepath.Join(tmpDir, "build")
	appConfig, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		BuildDir:   buildDir,
		LogLevel:   "debug",
		LogFormat:  "text",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	result := &HarnessResult{BuildDir: buildDir}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked: %v", r)
			}
		}()
		a := app.NewApp(logBuffer, appConfig, loader)
		result.App = a
		result.Err = a.Run(context.Background())
	}()

	result.LogOutput = logBuffer.String()
	return result
}
