// internal/app/snapshot.go
package app

import "github.com/clonkbot/neon-pinball-1a356e/internal/component"

// Snapshot — снимок состояния для рендера, только чтение. Рендерер ничего
// не знает про системы и получает готовые значения раз в тик.
type Snapshot struct {
	Phase       component.Phase
	Score       int
	HighScore   int
	BallsLeft   int
	LaunchPower float64

	Ball      component.Ball
	Bumpers   []component.Bumper
	Flippers  [2]component.Flipper
	Particles []component.Particle
	Trail     []component.TrailPoint
}

// Snapshot копирует текущее состояние мира и сессии.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       g.Session.Phase,
		Score:       g.Session.Score,
		HighScore:   g.Session.HighScore,
		BallsLeft:   g.Session.BallsLeft,
		LaunchPower: g.Session.LaunchPower,
		Ball:        *g.World.Ball,
		Bumpers:     make([]component.Bumper, 0, len(g.World.Bumpers)),
		Particles:   append([]component.Particle(nil), g.World.Particles...),
		Trail:       append([]component.TrailPoint(nil), g.World.Trail...),
	}
	for _, bp := range g.World.Bumpers {
		snap.Bumpers = append(snap.Bumpers, *bp)
	}
	for i, f := range g.World.Flippers {
		snap.Flippers[i] = *f
	}
	return snap
}
