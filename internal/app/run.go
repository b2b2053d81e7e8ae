package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/buildconfgo/internal/ctxlog"
	"github.com/vk/buildconfgo/internal/executor"
	"github.com/vk/buildconfgo/internal/planner"
)

// Run executes the main application logic: snapshot the registry, plan every
// profile into the host build graph, then materialize the generation steps.
// Per-profile planning failures are logged and skipped; Run fails only when
// no profile at all could be planned or when writing output fails.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// The registry is read as an immutable snapshot from here on; planning
	// never observes configuration applied after this point.
	snapshot := a.registry.Snapshot()
	a.logger.Debug("Registry snapshot taken.", "profiles", len(snapshot))

	pl := planner.New(a.logger, a.system, a.config.BuildDir)
	plan := pl.Plan(ctx, snapshot)

	if len(plan.Profiles) == 0 {
		if len(plan.Failed) > 0 {
			return fmt.Errorf("no profile could be planned: %w", errors.Join(plan.Failed...))
		}
		a.logger.Warn("No profiles registered, nothing to generate.")
		return nil
	}
	a.logger.Info("Build graph registered.",
		"steps", a.system.Graph.Len(),
		"profiles", len(plan.Profiles),
		"failed", len(plan.Failed),
	)

	a.logger.Info("Starting generation...")
	exec := executor.New(a.system.Graph)
	if err := exec.Run(ctx); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	a.logger.Info("Generation finished.")

	a.logger.Debug("App.Run method finished.")
	return nil
}
