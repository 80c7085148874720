package ceiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/rtappgo/internal/model"
)

func verifiedApp() *model.App {
	zero := cty.NumberIntVal(0)
	return &model.App{
		Init: model.Phase{Resources: []string{"STATE"}},
		Idle: model.Phase{Resources: []string{"SCRATCH"}},
		Resources: map[string]*model.Resource{
			"STATE":   {Name: "STATE", Initializer: &zero},
			"SHARED":  {Name: "SHARED"},
			"BUFFER":  {Name: "BUFFER"},
			"SCRATCH": {Name: "SCRATCH"},
		},
		Tasks: map[string]*model.Task{
			"SYS_TICK": {
				Name:      "SYS_TICK",
				Kind:      model.ExceptionKind{Exception: model.SysTick},
				Handler:   "tick",
				Priority:  3,
				Resources: []string{"SHARED"},
			},
			"EXTI0": {
				Name:      "EXTI0",
				Kind:      model.InterruptKind{Enabled: true},
				Handler:   "button",
				Priority:  1,
				Resources: []string{"SHARED", "BUFFER"},
			},
		},
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	ceilings := Compute(verifiedApp())
	require.Len(t, ceilings, 4)

	t.Run("shared resource takes the highest claimant priority", func(t *testing.T) {
		assert.Equal(t, Ceiling{Priority: 3}, ceilings["SHARED"])
	})

	t.Run("single claimant sets the ceiling", func(t *testing.T) {
		assert.Equal(t, Ceiling{Priority: 1}, ceilings["BUFFER"])
	})

	t.Run("init-owned resource sits above all tasks", func(t *testing.T) {
		assert.Equal(t, Ceiling{Init: true}, ceilings["STATE"])
	})

	t.Run("idle-only resource needs no masking", func(t *testing.T) {
		assert.Equal(t, Ceiling{Priority: 0}, ceilings["SCRATCH"])
	})
}

func TestCeilingCovers(t *testing.T) {
	t.Parallel()

	assert.True(t, Ceiling{Init: true}.Covers(255))
	assert.True(t, Ceiling{Priority: 3}.Covers(3))
	assert.True(t, Ceiling{Priority: 3}.Covers(1))
	assert.False(t, Ceiling{Priority: 3}.Covers(4))
	assert.False(t, Ceiling{}.Covers(1))
}

func TestCeilingString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "init", Ceiling{Init: true}.String())
	assert.Equal(t, "2", Ceiling{Priority: 2}.String())
}
