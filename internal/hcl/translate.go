package hcl

import (
	"fmt"

	"github.com/vk/rtappgo/internal/config"
)

// mergeState tracks which singleton declarations have been seen across the
// files of one description.
type mergeState struct {
	device bool
	init   bool
	idle   bool
}

// merge folds one decoded file into the accumulated model, rejecting
// redeclarations of singletons and of resource or task names.
func (l *Loader) merge(m *config.Model, root *fileRoot, seen *mergeState) error {
	if root.Device != nil {
		if seen.device {
			return fmt.Errorf("duplicate `device` attribute (already set to %q)", m.Device)
		}
		seen.device = true
		m.Device = *root.Device
	}

	if root.Init != nil {
		if seen.init {
			return fmt.Errorf("duplicate `init` block")
		}
		seen.init = true
		m.Init = config.Phase{Resources: root.Init.Resources}
	}

	if root.Idle != nil {
		if seen.idle {
			return fmt.Errorf("duplicate `idle` block")
		}
		seen.idle = true
		m.Idle = config.Phase{Resources: root.Idle.Resources}
	}

	for _, res := range root.Resources {
		if _, ok := m.Resources[res.Name]; ok {
			return fmt.Errorf("duplicate resource `%s`", res.Name)
		}
		translated, err := translateResource(res)
		if err != nil {
			return err
		}
		m.Resources[res.Name] = translated
	}

	for _, task := range root.Tasks {
		if _, ok := m.Tasks[task.Name]; ok {
			return fmt.Errorf("duplicate task `%s`", task.Name)
		}
		m.Tasks[task.Name] = translateTask(task)
	}

	return nil
}

// translateResource evaluates the optional initializer expression down to a
// literal value. Only literals are meaningful: nothing else exists at init
// time on the target, so the expression is evaluated with no context. An
// explicit null counts as no initializer.
func translateResource(res *resourceBlock) (*config.Resource, error) {
	out := &config.Resource{Name: res.Name}
	if res.Init == nil {
		return out, nil
	}

	val, diags := res.Init.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid initializer for resource `%s`: %w", res.Name, diags)
	}
	if !val.IsNull() {
		out.Initializer = &val
	}
	return out, nil
}

// translateTask maps a decoded task block onto the raw task declaration.
func translateTask(task *taskBlock) *config.Task {
	out := &config.Task{
		Name:      task.Name,
		Priority:  task.Priority,
		Enabled:   task.Enabled,
		Resources: task.Resources,
	}
	if task.Handler != nil {
		out.Handler = *task.Handler
	}
	return out
}
