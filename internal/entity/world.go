// internal/entity/world.go
package entity

import (
	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/defs"
)

// World — явное состояние симуляции. Владеет им игровой цикл; системы
// получают его по ссылке и мутируют на месте, никаких глобальных сущностей.
type World struct {
	Tick      uint64
	Ball      *component.Ball
	Bumpers   []*component.Bumper
	Flippers  [2]*component.Flipper
	Particles []component.Particle
	Trail     []component.TrailPoint
}

// NewWorld собирает стол из описаний в defs и ставит шар в жёлоб запуска.
func NewWorld() *World {
	w := &World{
		Ball: &component.Ball{
			X:      config.LaunchX,
			Y:      config.LaunchY,
			Radius: config.BallRadius,
		},
		Particles: make([]component.Particle, 0, config.MaxParticles),
		Trail:     make([]component.TrailPoint, 0, config.TrailMax),
	}
	for _, d := range defs.TableBumpers {
		w.Bumpers = append(w.Bumpers, &component.Bumper{
			X:      d.X,
			Y:      d.Y,
			Radius: d.Radius,
			Points: d.Points,
			Color:  d.Color,
		})
	}
	sides := [2]component.FlipperSide{component.FlipperLeft, component.FlipperRight}
	for i, d := range defs.TableFlippers {
		w.Flippers[i] = &component.Flipper{
			PivotX: d.PivotX,
			PivotY: d.PivotY,
			Length: d.Length,
			Angle:  d.Rest,
			Target: d.Rest,
			Rest:   d.Rest,
			Swung:  d.Swung,
			Side:   sides[i],
		}
	}
	return w
}

// ResetBall ставит новый шар на позицию запуска. Старый шар просто
// замещается — жизнь шара и есть жизнь этого объекта.
func (w *World) ResetBall() {
	w.Ball = &component.Ball{
		X:      config.LaunchX,
		Y:      config.LaunchY,
		Radius: config.BallRadius,
	}
}
