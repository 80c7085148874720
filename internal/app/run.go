package app

import (
	"context"
	"fmt"

	"github.com/vk/rtappgo/internal/ceiling"
	"github.com/vk/rtappgo/internal/check"
	"github.com/vk/rtappgo/internal/ctxlog"
	"github.com/vk/rtappgo/internal/model"
)

// Run executes the full pipeline: load the application description, verify
// it, and print the report. Verification is an atomic gate — the model is
// returned, and the report printed, only when every check passed.
func (a *App) Run(ctx context.Context) (*model.App, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	raw, err := a.loader.Load(ctx, a.config.AppPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load application description: %w", err)
	}
	a.logger.Debug("Application description loaded.",
		"tasks", len(raw.Tasks), "resources", len(raw.Resources))

	verified, err := check.App(ctx, a.outW, raw)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Configuration verified.",
		"tasks", len(verified.Tasks), "resources", len(verified.Resources))

	a.report(verified)
	return verified, nil
}

// report prints the human summary of a successful verification, including
// the lock ceiling the backend must uphold for every resource.
func (a *App) report(verified *model.App) {
	fmt.Fprintln(a.outW, "configuration OK")
	if verified.Device != "" {
		fmt.Fprintf(a.outW, "device: %s\n", verified.Device)
	}

	if len(verified.Tasks) > 0 {
		fmt.Fprintln(a.outW, "tasks:")
		for _, name := range verified.TaskNames() {
			t := verified.Tasks[name]
			fmt.Fprintf(a.outW, "  %s: %s, priority %d -> %s\n", name, t.Kind, t.Priority, t.Handler)
		}
	}

	if len(verified.Resources) > 0 {
		ceilings := ceiling.Compute(verified)
		fmt.Fprintln(a.outW, "resources:")
		for _, name := range verified.ResourceNames() {
			fmt.Fprintf(a.outW, "  %s: ceiling %s\n", name, ceilings[name])
		}
	}
}
