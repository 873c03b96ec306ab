// internal/system/physics.go
package system

import (
	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/entity"
)

// PhysicsSystem интегрирует движение шара: гравитация, трение, явный Эйлер.
// Работает только в фазе playing; шаг фиксированный, один на кадр.
type PhysicsSystem struct {
	world *entity.World
}

func NewPhysicsSystem(world *entity.World) *PhysicsSystem {
	return &PhysicsSystem{world: world}
}

func (s *PhysicsSystem) Update(sess *component.Session) {
	if sess.Phase != component.PhasePlaying {
		return
	}
	b := s.world.Ball
	b.VY += config.Gravity
	b.VX *= config.Friction
	b.VY *= config.Friction
	b.X += b.VX
	b.Y += b.VY
}
