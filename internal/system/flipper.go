// internal/system/flipper.go
package system

import (
	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/entity"
	"github.com/clonkbot/neon-pinball-1a356e/internal/interfaces"
	"github.com/clonkbot/neon-pinball-1a356e/internal/utils"
)

// FlipperSystem выставляет целевой угол флиппера из ввода и приближает
// текущий угол к цели. Крутится каждый тик независимо от фазы игры —
// флипперами можно щёлкать даже на экране game over.
type FlipperSystem struct {
	world *entity.World
	input interfaces.InputSource
}

func NewFlipperSystem(world *entity.World, input interfaces.InputSource) *FlipperSystem {
	return &FlipperSystem{world: world, input: input}
}

func (s *FlipperSystem) Update() {
	for _, f := range s.world.Flippers {
		action := interfaces.ActionLeftFlipper
		if f.Side == component.FlipperRight {
			action = interfaces.ActionRightFlipper
		}
		if s.input.IsHeld(action) {
			f.Target = f.Swung
		} else {
			f.Target = f.Rest
		}
		f.Angle = utils.Approach(f.Angle, f.Target, config.FlipperSpeed)
	}
}
