package check

import (
	"errors"

	"github.com/vk/rtappgo/internal/model"
)

// resources enforces the resource-sharing invariants over a fully assembled
// application. Three passes run in order: init exclusivity, then liveness,
// then referential integrity. Each pass is total — it reports every
// violation it finds — but the first pass with any violation fails the whole
// validation.
func resources(app *model.App) error {
	passes := []func(*model.App) []error{
		initExclusivity,
		liveness,
		referentialIntegrity,
	}
	for _, pass := range passes {
		if errs := pass(app); len(errs) > 0 {
			return errors.Join(errs...)
		}
	}
	return nil
}

// initExclusivity: every resource claimed by init must be a declared data
// resource, must carry an initial value, and must not be claimed by idle or
// by any task. Init-time initialization is sequential and non-preemptible;
// letting anything else touch a resource init is still constructing would be
// unsound regardless of any locking discipline.
func initExclusivity(app *model.App) []error {
	var errs []error
	for _, name := range app.Init.Resources {
		res, ok := app.Resources[name]
		if !ok {
			errs = append(errs, newErrorf(UnknownResource, name,
				"resource `%s`, allocated to `init`, must be a data resource", name))
			continue
		}
		if res.Initializer == nil {
			errs = append(errs, newErrorf(ResourceNotInitialized, name,
				"resource `%s`, allocated to `init`, must have an initial value", name))
		}
		if app.Idle.Claims(name) {
			errs = append(errs, newErrorf(ResourceConflict, name,
				"resource `%s` is allocated to `init` and can't be shared with `idle`", name))
		}
		for _, taskName := range app.TaskNames() {
			if app.Tasks[taskName].Claims(name) {
				errs = append(errs, newErrorf(ResourceConflict, name,
					"resource `%s` is allocated to `init` and can't be shared with task `%s`",
					name, taskName))
			}
		}
	}
	return errs
}

// liveness: every declared resource must be claimed by init, by idle, or by
// at least one task. A resource nobody claims is configuration drift.
func liveness(app *model.App) []error {
	var errs []error
	for _, name := range app.ResourceNames() {
		if app.Init.Claims(name) || app.Idle.Claims(name) {
			continue
		}
		claimed := false
		for _, t := range app.Tasks {
			if t.Claims(name) {
				claimed = true
				break
			}
		}
		if !claimed {
			errs = append(errs, newErrorf(UnusedResource, name,
				"resource `%s` is unused", name))
		}
	}
	return errs
}

// referentialIntegrity: every claim a task makes must name a declared
// resource. Claims are free text authored per task; typos surface here.
func referentialIntegrity(app *model.App) []error {
	var errs []error
	for _, taskName := range app.TaskNames() {
		for _, resName := range app.Tasks[taskName].Resources {
			if _, ok := app.Resources[resName]; !ok {
				errs = append(errs, newErrorf(UnknownResource, resName,
					"task `%s` claims an undeclared resource `%s`", taskName, resName))
			}
		}
	}
	return errs
}
