// internal/system/particle_test.go
package system

import (
	"image/color"
	"testing"

	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/event"
	"github.com/clonkbot/neon-pinball-1a356e/internal/utils"
)

func TestBumperHitSpawnsParticles(t *testing.T) {
	world := newTestWorld()
	sys := NewParticleSystem(world, utils.NewPRNGService(1))

	col := color.RGBA{255, 64, 129, 255}
	sys.OnEvent(event.Event{Type: event.BumperHit, Data: event.BumperHitData{X: 100, Y: 150, Color: col}})

	if len(world.Particles) != config.BumperParticleCount {
		t.Fatalf("spawned %d, want %d", len(world.Particles), config.BumperParticleCount)
	}
	for _, p := range world.Particles {
		if p.Color != col {
			t.Errorf("particle color = %v, want bumper color %v", p.Color, col)
		}
		if p.Life != 1 {
			t.Errorf("fresh particle life = %v, want 1", p.Life)
		}
	}
}

func TestFlipperHitSpawnsCyanSparks(t *testing.T) {
	world := newTestWorld()
	sys := NewParticleSystem(world, utils.NewPRNGService(1))

	sys.OnEvent(event.Event{Type: event.FlipperHit, Data: event.FlipperHitData{X: 100, Y: 650}})

	if len(world.Particles) != config.FlipperParticleCount {
		t.Fatalf("spawned %d, want %d", len(world.Particles), config.FlipperParticleCount)
	}
	for _, p := range world.Particles {
		if p.Color != config.FlipperSparkColor {
			t.Errorf("spark color = %v, want cyan", p.Color)
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	world := newTestWorld()
	sys := NewParticleSystem(world, utils.NewPRNGService(1))
	sys.OnEvent(event.Event{Type: event.FlipperHit, Data: event.FlipperHitData{}})

	// Жизнь уходит за 1/ParticleDecay тиков.
	for i := 0; i < 40; i++ {
		sys.Update()
	}
	if len(world.Particles) != 0 {
		t.Errorf("%d particles survived past their lifetime", len(world.Particles))
	}
}

func TestParticlePoolCapped(t *testing.T) {
	world := newTestWorld()
	sys := NewParticleSystem(world, utils.NewPRNGService(1))

	for i := 0; i < 50; i++ {
		sys.OnEvent(event.Event{Type: event.BumperHit, Data: event.BumperHitData{X: 10, Y: 10}})
	}
	if len(world.Particles) > config.MaxParticles {
		t.Errorf("pool grew to %d, cap is %d", len(world.Particles), config.MaxParticles)
	}
}
