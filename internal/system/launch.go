// internal/system/launch.go
package system

import (
	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/entity"
	"github.com/clonkbot/neon-pinball-1a356e/internal/event"
	"github.com/clonkbot/neon-pinball-1a356e/internal/interfaces"
	"github.com/clonkbot/neon-pinball-1a356e/internal/utils"
)

// LaunchSystem заряжает плунжер, пока удерживается клавиша запуска,
// и на отпускании выпускает шар: vy = -0.3*power, vx — фиксированный
// толчок влево, выводящий шар со стартового жёлоба на поле.
type LaunchSystem struct {
	world   *entity.World
	input   interfaces.InputSource
	events  *event.Dispatcher
	wasHeld bool
}

func NewLaunchSystem(world *entity.World, input interfaces.InputSource, events *event.Dispatcher) *LaunchSystem {
	return &LaunchSystem{world: world, input: input, events: events}
}

func (s *LaunchSystem) Update(sess *component.Session) {
	if sess.Phase != component.PhaseLaunching {
		s.wasHeld = false
		return
	}

	held := s.input.IsHeld(interfaces.ActionLaunch)
	switch {
	case held:
		sess.LaunchPower = utils.Clamp(sess.LaunchPower+config.ChargePerTick, 0, config.MaxLaunchPower)
	case s.wasHeld && sess.LaunchPower > 0:
		b := s.world.Ball
		b.VY = -sess.LaunchPower * config.LaunchFactor
		b.VX = config.LaunchNudge
		sess.Phase = component.PhasePlaying
		s.events.Dispatch(event.Event{
			Type: event.BallLaunched,
			Data: event.BallLaunchedData{Power: sess.LaunchPower},
		})
		sess.LaunchPower = 0
	}
	s.wasHeld = held
}
