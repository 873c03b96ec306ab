// internal/system/trail.go
package system

import (
	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/entity"
)

// TrailSystem ведёт ограниченный буфер последних позиций шара для светового
// следа. Точки добавляются пока шар на поле; альфа гаснет фиксированным
// множителем, выцветшие точки уходят из буфера.
type TrailSystem struct {
	world *entity.World
}

func NewTrailSystem(world *entity.World) *TrailSystem {
	return &TrailSystem{world: world}
}

func (s *TrailSystem) Update(sess *component.Session) {
	kept := s.world.Trail[:0]
	for _, tp := range s.world.Trail {
		tp.Alpha *= config.TrailDecay
		if tp.Alpha >= config.TrailMinAlpha {
			kept = append(kept, tp)
		}
	}
	s.world.Trail = kept

	if sess.Phase != component.PhaseLaunching && sess.Phase != component.PhasePlaying {
		return
	}
	b := s.world.Ball
	s.world.Trail = append(s.world.Trail, component.TrailPoint{X: b.X, Y: b.Y, Alpha: 1})
	if len(s.world.Trail) > config.TrailMax {
		n := copy(s.world.Trail, s.world.Trail[len(s.world.Trail)-config.TrailMax:])
		s.world.Trail = s.world.Trail[:n]
	}
}
