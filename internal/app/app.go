package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/buildconfgo/internal/config"
	"github.com/vk/buildconfgo/internal/ctxlog"
	"github.com/vk/buildconfgo/internal/host"
	"github.com/vk/buildconfgo/internal/planner"
	"github.com/vk/buildconfgo/internal/profile"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *profile.Registry
	system   *host.System
}

// NewApp is the constructor for the main application. It loads the
// configuration through the provided loader, sets up the in-process host
// model, and populates the profile registry. A failure to load configuration
// is a fatal startup error and panics; the CLI entrypoint recovers it into
// a clean exit message.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	system := newSystem(model)
	logger.Debug("Host project model constructed.", "project", system.ProjectName())

	registry := profile.NewRegistry()
	populateRegistry(registry, model)
	logger.Debug("Profile registry populated.", "profiles", registry.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: registry,
		system:   system,
	}
}

// Registry returns the application's profile registry. Primarily for testing.
func (a *App) Registry() *profile.Registry {
	return a.registry
}

// System returns the in-process host model. Primarily for testing.
func (a *App) System() *host.System {
	return a.system
}

// newSystem builds the in-process host from the project declaration: the
// project metadata, its source sets (the "main" unit always exists), and the
// conventionally named dependency target for each source set.
func newSystem(model *config.Model) *host.System {
	var name string
	var group, version any
	var sourceSets []string

	if model.Project != nil {
		name = model.Project.Name
		group = model.Project.Group
		version = model.Project.Version
		sourceSets = model.Project.SourceSets
	}

	project := host.NewProject(name, group, version)
	project.AddSourceSet(profile.MainProfile)
	project.AddConfiguration(planner.DependencyTargetName(profile.MainProfile))
	for _, ss := range sourceSets {
		project.AddSourceSet(ss)
		project.AddConfiguration(planner.DependencyTargetName(ss))
	}
	return host.NewSystem(project)
}

// populateRegistry applies the declared profiles to the registry. Repeated
// declarations of the same profile accumulate.
func populateRegistry(registry *profile.Registry, model *config.Model) {
	for _, cp := range model.Profiles {
		p := registry.Register(cp.Name)
		if cp.PackageName != "" {
			p.SetPackageName(cp.PackageName)
		}
		if cp.ClassName != "" {
			p.SetClassName(cp.ClassName)
		}
		if cp.AppName != "" {
			p.SetAppName(cp.AppName)
		}
		if cp.Version != "" {
			p.SetVersion(cp.Version)
		}
		if cp.Charset != "" {
			p.SetCharset(cp.Charset)
		}
		for _, f := range cp.Fields {
			p.SetField(f.Name, profile.FieldType(f.Type), f.Raw, f.Value)
		}
	}
}
