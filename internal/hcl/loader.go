package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/buildconfgo/internal/config"
	"github.com/vk/buildconfgo/internal/ctxlog"
	"github.com/vk/buildconfgo/internal/fsutil"
	"github.com/vk/buildconfgo/internal/schema"
)

// Loader reads .hcl configuration files into the format-agnostic model.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses all .hcl files reachable from the given paths (files or
// directories), merges them, and translates the result into the model.
// Profiles accumulate across files in a stable file order; the project block
// may appear at most once.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read configuration path: %w", err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("failed to walk configuration directory %s: %w", path, err)
			}
			files = append(files, found...)
		} else {
			files = append(files, path)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl configuration files found in %v", paths)
	}
	logger.Debug("Found HCL configuration files.", "files", files)

	parser := hclparse.NewParser()
	model := &config.Model{}

	for _, filePath := range files {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", filePath, diags)
		}

		var cfg schema.Config
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &cfg); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", filePath, diags)
		}

		if cfg.Project != nil {
			if model.Project != nil {
				return nil, fmt.Errorf("project block declared more than once (second occurrence in %s)", filePath)
			}
			model.Project = translateProject(cfg.Project)
		}

		for _, p := range cfg.Profiles {
			translated, err := l.translateProfile(ctx, p)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", filePath, err)
			}
			model.Profiles = append(model.Profiles, translated)
		}
		logger.Debug("Loaded configuration file.", "file", filePath, "profiles", len(cfg.Profiles))
	}

	return model, nil
}
