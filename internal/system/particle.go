// internal/system/particle.go
package system

import (
	"image/color"
	"math"

	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/entity"
	"github.com/clonkbot/neon-pinball-1a356e/internal/event"
	"github.com/clonkbot/neon-pinball-1a356e/internal/utils"
)

// ParticleSystem порождает искры по событиям столкновений и двигает их,
// пока жизнь не иссякнет. На геймплей не влияет. Пул ограничен; при
// переполнении новые искры перезаписывают старые по кругу.
type ParticleSystem struct {
	world  *entity.World
	rng    *utils.PRNGService
	ovrIdx int
}

func NewParticleSystem(world *entity.World, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{world: world, rng: rng}
}

// OnEvent — подписка на BumperHit и FlipperHit.
func (s *ParticleSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.BumperHit:
		d := e.Data.(event.BumperHitData)
		s.spawn(d.X, d.Y, config.BumperParticleCount, d.Color)
	case event.FlipperHit:
		d := e.Data.(event.FlipperHitData)
		s.spawn(d.X, d.Y, config.FlipperParticleCount, config.FlipperSparkColor)
	}
}

func (s *ParticleSystem) spawn(x, y float64, count int, col color.RGBA) {
	for i := 0; i < count; i++ {
		ang := s.rng.Range(0, 2*math.Pi)
		sp := s.rng.Range(1, 4)
		s.add(component.Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(ang) * sp,
			VY:    math.Sin(ang)*sp - 1, // искры летят чуть вверх
			Life:  1,
			Color: col,
		})
	}
}

func (s *ParticleSystem) add(p component.Particle) {
	if len(s.world.Particles) < config.MaxParticles {
		s.world.Particles = append(s.world.Particles, p)
		return
	}
	// Circular overwrite.
	if s.ovrIdx >= len(s.world.Particles) {
		s.ovrIdx = 0
	}
	s.world.Particles[s.ovrIdx] = p
	s.ovrIdx++
}

// Update двигает искры и убирает погасшие, уплотняя срез на месте.
func (s *ParticleSystem) Update() {
	alive := s.world.Particles[:0]
	for _, p := range s.world.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += config.ParticleGravity
		p.Life -= config.ParticleDecay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.world.Particles = alive
	if s.ovrIdx > len(alive) {
		s.ovrIdx = 0
	}
}
