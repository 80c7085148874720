package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/rtappgo/internal/config"
	"github.com/vk/rtappgo/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestTask_ExceptionKind(t *testing.T) {
	t.Parallel()

	t.Run("reserved name resolves to its vector", func(t *testing.T) {
		built, err := task("PENDSV", &config.Task{Handler: "pendsv"})
		require.NoError(t, err)

		kind, ok := built.Kind.(model.ExceptionKind)
		require.True(t, ok, "expected an exception kind, got %T", built.Kind)
		assert.Equal(t, model.PendSV, kind.Exception)
		assert.Equal(t, 14, kind.Exception.Number())
		assert.Equal(t, model.DefaultPriority, built.Priority)
	})

	t.Run("enabled flag is forbidden regardless of value", func(t *testing.T) {
		for _, enabled := range []bool{true, false} {
			_, err := task("SVCALL", &config.Task{Handler: "svc", Enabled: ptr(enabled)})
			require.Error(t, err)
			assert.Equal(t, InvalidField, KindOf(err))
			assert.Contains(t, err.Error(), "not valid for exceptions")
		}
	})
}

func TestTask_InterruptKind(t *testing.T) {
	t.Parallel()

	t.Run("enabled defaults to true when omitted", func(t *testing.T) {
		built, err := task("EXTI0", &config.Task{Handler: "button"})
		require.NoError(t, err)
		assert.Equal(t, model.InterruptKind{Enabled: true}, built.Kind)
	})

	t.Run("enabled may be explicitly false", func(t *testing.T) {
		built, err := task("EXTI0", &config.Task{Handler: "button", Enabled: ptr(false)})
		require.NoError(t, err)
		assert.Equal(t, model.InterruptKind{Enabled: false}, built.Kind)
	})

	t.Run("explicitly stating the default is rejected", func(t *testing.T) {
		_, err := task("EXTI0", &config.Task{Handler: "button", Enabled: ptr(true)})
		require.Error(t, err)
		assert.Equal(t, RedundantDefault, KindOf(err))
		assert.Contains(t, err.Error(), "default value")
	})
}

func TestTask_Fields(t *testing.T) {
	t.Parallel()

	t.Run("handler is mandatory", func(t *testing.T) {
		_, err := task("EXTI0", &config.Task{})
		require.Error(t, err)
		assert.Equal(t, MissingField, KindOf(err))
		assert.Contains(t, err.Error(), "`handler` field is missing")
	})

	t.Run("declared priority and claims carry through", func(t *testing.T) {
		built, err := task("EXTI1", &config.Task{
			Handler:   "isr",
			Priority:  ptr(3),
			Resources: []string{"SHARED", "BUFFER"},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, built.Priority)
		assert.Equal(t, []string{"SHARED", "BUFFER"}, built.Resources)
		assert.Equal(t, "isr", built.Handler)
	})
}
