// Package executor materializes the registered generation steps: it walks
// the host's step graph in registration order (generation always precedes
// the compilation that depends on it) and writes each profile's constants
// class into its profile-scoped output directory. Compilation steps are
// left to the host's toolchain.
package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/buildconfgo/internal/ctxlog"
	"github.com/vk/buildconfgo/internal/gen"
	"github.com/vk/buildconfgo/internal/host"
	"github.com/vk/buildconfgo/internal/planner"
	"golang.org/x/text/encoding/htmlindex"
)

// Executor runs the generation steps of a step graph.
type Executor struct {
	graph *host.Graph
}

// New creates an Executor for the given step graph.
func New(graph *host.Graph) *Executor {
	return &Executor{graph: graph}
}

// Run executes all generation steps, writing one source file per profile.
// The write honors the profile's charset.
func (e *Executor) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for _, step := range e.graph.Steps() {
		switch cfg := step.Config.(type) {
		case *planner.GenerateConfig:
			if err := e.runGenerate(ctx, step.Name, cfg); err != nil {
				return fmt.Errorf("step %q: %w", step.Name, err)
			}
		case *planner.CompileConfig:
			logger.Debug("Compilation step delegated to the host toolchain.",
				"step", step.Name, "source_dir", cfg.SourceDir, "output_dir", cfg.OutputDir)
		default:
			logger.Warn("Unknown step configuration, skipping.", "step", step.Name)
		}
	}
	return nil
}

func (e *Executor) runGenerate(ctx context.Context, stepName string, cfg *planner.GenerateConfig) error {
	logger := ctxlog.FromContext(ctx)

	src, err := gen.Generate(cfg.Profile)
	if err != nil {
		return err
	}
	encoded, err := encode(src, cfg.Profile.Charset)
	if err != nil {
		return fmt.Errorf("profile %q: %w", cfg.Profile.Name, err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	outPath := filepath.Join(cfg.OutputDir, cfg.Profile.ClassName+".java")
	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write generated source: %w", err)
	}

	logger.Info("Generated build-config class.", "step", stepName, "file", outPath)
	return nil
}

// encode transcodes generated UTF-8 source text into the profile's charset.
func encode(src []byte, charset string) ([]byte, error) {
	if charset == "" || strings.EqualFold(charset, "UTF-8") {
		return src, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	out, err := enc.NewEncoder().Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("cannot encode generated source as %q: %w", charset, err)
	}
	return out, nil
}
