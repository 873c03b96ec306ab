// internal/app/game.go
package app

import (
	"log"

	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/entity"
	"github.com/clonkbot/neon-pinball-1a356e/internal/event"
	"github.com/clonkbot/neon-pinball-1a356e/internal/interfaces"
	"github.com/clonkbot/neon-pinball-1a356e/internal/system"
	"github.com/clonkbot/neon-pinball-1a356e/internal/utils"
)

// Game хранит состояние симуляции и прогоняет конвейер одного тика:
// ввод → переходы фаз → флипперы → (playing) физика → столкновения →
// косметика. Тик фиксированный, один на кадр ebiten.
type Game struct {
	World    *entity.World
	Session  *component.Session
	Events   *event.Dispatcher
	Schedule *event.Schedule

	input interfaces.InputSource
	store interfaces.ScoreStore

	flippers  *system.FlipperSystem
	launcher  *system.LaunchSystem
	physics   *system.PhysicsSystem
	collision *system.CollisionSystem
	particles *system.ParticleSystem
	trail     *system.TrailSystem
}

func NewGame(input interfaces.InputSource, store interfaces.ScoreStore) *Game {
	world := entity.NewWorld()
	dispatcher := event.NewDispatcher()
	schedule := event.NewSchedule()

	g := &Game{
		World:    world,
		Events:   dispatcher,
		Schedule: schedule,
		input:    input,
		store:    store,
		Session: &component.Session{
			Phase:     component.PhaseReady,
			HighScore: store.Load(),
			BallsLeft: config.BallsPerGame,
		},
	}

	g.flippers = system.NewFlipperSystem(world, input)
	g.launcher = system.NewLaunchSystem(world, input, dispatcher)
	g.physics = system.NewPhysicsSystem(world)
	g.collision = system.NewCollisionSystem(world, dispatcher, schedule)
	g.particles = system.NewParticleSystem(world, utils.NewPRNGService(0))
	g.trail = system.NewTrailSystem(world)

	dispatcher.Subscribe(event.BumperHit, g.particles)
	dispatcher.Subscribe(event.FlipperHit, g.particles)

	listener := &sessionListener{game: g}
	dispatcher.Subscribe(event.BallDrained, listener)

	return g
}

// AttachAudio подключает звуковую систему ко всем шумящим событиям.
// Вызывается из main; в тестах и headless-запусках звука нет.
func (g *Game) AttachAudio(audio *system.AudioSystem) {
	for _, t := range []event.EventType{
		event.BumperHit,
		event.FlipperHit,
		event.WallHit,
		event.GutterHit,
		event.BallLaunched,
		event.BallDrained,
		event.GameOver,
	} {
		g.Events.Subscribe(t, audio)
	}
}

// Step выполняет один логический тик.
func (g *Game) Step() {
	g.World.Tick++
	g.Schedule.Run(g.World.Tick)

	// ready и gameover ждут стартового ввода; всё остальное — дело систем.
	switch g.Session.Phase {
	case component.PhaseReady, component.PhaseGameOver:
		if g.input.JustPressed(interfaces.ActionStart) {
			g.StartGame()
		}
	}

	g.flippers.Update()
	g.launcher.Update(g.Session)
	g.physics.Update(g.Session)
	g.collision.Update(g.Session)
	g.trail.Update(g.Session)
	g.particles.Update()
}

// StartGame — переход ready→launching или gameover→launching:
// полный сброс счёта, жизней и шара.
func (g *Game) StartGame() {
	g.Session.Score = 0
	g.Session.BallsLeft = config.BallsPerGame
	g.Session.LaunchPower = 0
	g.World.ResetBall()
	g.Session.Phase = component.PhaseLaunching
}

// sessionListener ведёт жизни и рекорд по событию потери шара.
type sessionListener struct {
	game *Game
}

func (l *sessionListener) OnEvent(e event.Event) {
	if e.Type != event.BallDrained {
		return
	}
	g := l.game
	if g.Session.BallsLeft > 0 {
		g.Session.BallsLeft--
	}
	if g.Session.BallsLeft > 0 {
		g.Session.LaunchPower = 0
		g.World.ResetBall()
		g.Session.Phase = component.PhaseLaunching
		return
	}
	g.Session.Phase = component.PhaseGameOver
	if g.Session.Score > g.Session.HighScore {
		g.Session.HighScore = g.Session.Score
		g.Events.Dispatch(event.Event{Type: event.NewHighScore})
	}
	g.store.Save(g.Session.HighScore)
	log.Printf("game over: score=%d high=%d", g.Session.Score, g.Session.HighScore)
	g.Events.Dispatch(event.Event{Type: event.GameOver})
}
