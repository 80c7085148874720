package check

import (
	"github.com/vk/rtappgo/internal/config"
	"github.com/vk/rtappgo/internal/model"
)

// task validates one raw declaration and normalizes it into a canonical
// model.Task. The task's name decides its kind: a reserved exception name
// binds it to that vector, anything else is a vendor interrupt. Resource
// claims pass through untouched here; they are cross-referenced later, once
// the whole application is assembled.
func task(name string, raw *config.Task) (*model.Task, error) {
	var kind model.Kind
	if e, ok := model.ExceptionFromName(name); ok {
		// Exceptions are fixed by the platform and cannot be masked
		// individually, so an enabled flag has no meaning here.
		if raw.Enabled != nil {
			return nil, newErrorf(InvalidField, name,
				"`enabled` field is not valid for exceptions")
		}
		kind = model.ExceptionKind{Exception: e}
	} else {
		if raw.Enabled != nil && *raw.Enabled {
			return nil, newErrorf(RedundantDefault, name,
				"`enabled = true` is the default value; this line can be omitted")
		}
		enabled := true
		if raw.Enabled != nil {
			enabled = *raw.Enabled
		}
		kind = model.InterruptKind{Enabled: enabled}
	}

	if raw.Handler == "" {
		return nil, newErrorf(MissingField, name, "`handler` field is missing")
	}

	priority := model.DefaultPriority
	if raw.Priority != nil {
		priority = *raw.Priority
	}

	return &model.Task{
		Name:      name,
		Kind:      kind,
		Handler:   raw.Handler,
		Priority:  priority,
		Resources: raw.Resources,
	}, nil
}
