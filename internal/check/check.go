package check

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/vk/rtappgo/internal/config"
	"github.com/vk/rtappgo/internal/ctxlog"
	"github.com/vk/rtappgo/internal/model"
)

// App drives the full verification: every raw task is validated and
// normalized first, then the resource-sharing invariants are enforced once
// over the assembled whole. The two progress markers on outW mirror the two
// phases; they are informational and not part of the contract.
//
// Tasks are checked in name order so diagnostics are deterministic, and the
// first failing task aborts the run — a single invalid task already
// invalidates the whole configuration.
func App(ctx context.Context, outW io.Writer, raw *config.Model) (*model.App, error) {
	logger := ctxlog.FromContext(ctx)

	fmt.Fprintln(outW, "-- checking tasks --")
	app := &model.App{
		Device:    raw.Device,
		Init:      model.Phase{Resources: raw.Init.Resources},
		Idle:      model.Phase{Resources: raw.Idle.Resources},
		Resources: make(map[string]*model.Resource, len(raw.Resources)),
		Tasks:     make(map[string]*model.Task, len(raw.Tasks)),
	}
	for name, res := range raw.Resources {
		app.Resources[name] = &model.Resource{Name: name, Initializer: res.Initializer}
	}

	for _, name := range slices.Sorted(maps.Keys(raw.Tasks)) {
		t, err := task(name, raw.Tasks[name])
		if err != nil {
			return nil, fmt.Errorf("checking task `%s`: %w", name, err)
		}
		app.Tasks[name] = t
		logger.Debug("task checked", "task", name, "kind", t.Kind.String(), "priority", t.Priority)
	}

	fmt.Fprintln(outW, "-- checking resources --")
	if err := resources(app); err != nil {
		return nil, fmt.Errorf("checking `resources`: %w", err)
	}
	logger.Debug("resource claims verified", "resources", len(app.Resources))

	return app, nil
}
