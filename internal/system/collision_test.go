// internal/system/collision_test.go
package system

import (
	"math"
	"testing"

	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/event"
	"github.com/clonkbot/neon-pinball-1a356e/internal/utils"
)

func TestSideWallRestitution(t *testing.T) {
	world := newTestWorld()
	dispatcher := event.NewDispatcher()
	sys := NewCollisionSystem(world, dispatcher, event.NewSchedule())
	sess := playingSession()

	// Шар пробил левую стену со скоростью -10 по x.
	world.Ball.X = config.PlayfieldLeft + world.Ball.Radius - 5
	world.Ball.Y = 500
	world.Ball.VX = -10

	sys.Update(sess)

	wantX := config.PlayfieldLeft + world.Ball.Radius
	if world.Ball.X != wantX {
		t.Errorf("X = %v, want clamp at %v", world.Ball.X, wantX)
	}
	if math.Abs(world.Ball.VX-8) > 1e-9 {
		t.Errorf("VX = %v, want +8 (0.8 of incoming 10)", world.Ball.VX)
	}
}

func TestRightWallAndTopWall(t *testing.T) {
	world := newTestWorld()
	sys := NewCollisionSystem(world, event.NewDispatcher(), event.NewSchedule())
	sess := playingSession()

	world.Ball.X = config.PlayfieldRight - world.Ball.Radius + 3
	world.Ball.Y = 500
	world.Ball.VX = 6
	sys.Update(sess)
	if world.Ball.X != config.PlayfieldRight-world.Ball.Radius {
		t.Errorf("right clamp: X = %v", world.Ball.X)
	}
	if math.Abs(world.Ball.VX-(-6*config.WallRestitution)) > 1e-9 {
		t.Errorf("right wall VX = %v", world.Ball.VX)
	}

	world.Ball.X = 200
	world.Ball.Y = config.PlayfieldTop + world.Ball.Radius - 4
	world.Ball.VX = 0
	world.Ball.VY = -5
	sys.Update(sess)
	if world.Ball.Y != config.PlayfieldTop+world.Ball.Radius {
		t.Errorf("top clamp: Y = %v", world.Ball.Y)
	}
	if math.Abs(world.Ball.VY-4) > 1e-9 {
		t.Errorf("top wall VY = %v, want +4", world.Ball.VY)
	}
}

func TestBumperBoostsToFloorSpeedAndScoresOnce(t *testing.T) {
	world := newTestWorld()
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(event.BumperHit, rec)
	schedule := event.NewSchedule()
	sys := NewCollisionSystem(world, dispatcher, schedule)
	sess := playingSession()

	bp := world.Bumpers[0]
	// Шар покоится внутри зоны перекрытия, чуть правее центра бампера.
	world.Ball.X = bp.X + world.Ball.Radius + bp.Radius - 1
	world.Ball.Y = bp.Y
	world.Ball.VX, world.Ball.VY = 0, 0

	sys.Update(sess)

	speed := math.Hypot(world.Ball.VX, world.Ball.VY)
	if math.Abs(speed-config.BumperMinSpeed) > 1e-9 {
		t.Errorf("outgoing speed = %v, want floor %v", speed, config.BumperMinSpeed)
	}
	if sess.Score != bp.Points {
		t.Errorf("score = %d, want %d", sess.Score, bp.Points)
	}
	if !bp.Hit {
		t.Error("bumper hit flash not set")
	}
	if len(rec.events) != 1 {
		t.Fatalf("got %d BumperHit events, want 1", len(rec.events))
	}

	// Выталкивание разорвало перекрытие: повторный тик без движения шара
	// не должен начислить очки второй раз.
	sys.Update(sess)
	if sess.Score != bp.Points {
		t.Errorf("rescored on separated ball: score = %d", sess.Score)
	}
	if len(rec.events) != 1 {
		t.Errorf("second BumperHit on separated ball")
	}
}

func TestBumperAmplifiesFastBall(t *testing.T) {
	world := newTestWorld()
	sys := NewCollisionSystem(world, event.NewDispatcher(), event.NewSchedule())
	sess := playingSession()

	bp := world.Bumpers[0]
	world.Ball.X = bp.X + world.Ball.Radius + bp.Radius - 2
	world.Ball.Y = bp.Y
	world.Ball.VX = -10 // летит в бампер

	sys.Update(sess)

	speed := math.Hypot(world.Ball.VX, world.Ball.VY)
	if math.Abs(speed-10*config.BumperBoost) > 1e-9 {
		t.Errorf("outgoing speed = %v, want %v", speed, 10*config.BumperBoost)
	}
}

func TestBumperFlashClearsViaSchedule(t *testing.T) {
	world := newTestWorld()
	schedule := event.NewSchedule()
	sys := NewCollisionSystem(world, event.NewDispatcher(), schedule)
	sess := playingSession()

	bp := world.Bumpers[2]
	world.Ball.X = bp.X
	world.Ball.Y = bp.Y + world.Ball.Radius + bp.Radius - 1
	world.Tick = 100

	sys.Update(sess)
	if !bp.Hit {
		t.Fatal("hit flash not set")
	}

	schedule.Run(100 + config.HitFlashTicks - 1)
	if !bp.Hit {
		t.Error("flash cleared too early")
	}
	schedule.Run(100 + config.HitFlashTicks)
	if bp.Hit {
		t.Error("flash not cleared at target tick")
	}
}

func TestFlipperPassiveAndActiveBoost(t *testing.T) {
	tests := []struct {
		name      string
		swinging  bool
		wantSpeed float64
	}{
		{"resting flipper", false, config.FlipperPassiveBoost},
		{"swinging flipper", true, config.FlipperActiveBoost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := newTestWorld()
			dispatcher := event.NewDispatcher()
			rec := &recorder{}
			dispatcher.Subscribe(event.FlipperHit, rec)
			sys := NewCollisionSystem(world, dispatcher, event.NewSchedule())
			sess := playingSession()

			f := world.Flippers[0]
			if tt.swinging {
				f.Target = f.Swung // |target-angle| = 0.9 > порога
			}
			// Контакт над серединой отрезка флиппера, вдали от жёлоба,
			// чтобы поздняя проверка жёлобов не перекрыла результат.
			tipX := f.PivotX + math.Cos(f.Angle)*f.Length
			tipY := f.PivotY + math.Sin(f.Angle)*f.Length
			midX := (f.PivotX + tipX) / 2
			midY := (f.PivotY + tipY) / 2
			// Перпендикуляр к отрезку, смотрящий вверх.
			nx := math.Sin(f.Angle)
			ny := -math.Cos(f.Angle)
			world.Ball.X = midX + nx*12
			world.Ball.Y = midY + ny*12

			sys.Update(sess)

			wantVX := nx * tt.wantSpeed
			wantVY := ny*tt.wantSpeed + config.FlipperLift
			if math.Abs(world.Ball.VX-wantVX) > 1e-6 {
				t.Errorf("VX = %v, want %v", world.Ball.VX, wantVX)
			}
			if math.Abs(world.Ball.VY-wantVY) > 1e-6 {
				t.Errorf("VY = %v, want %v", world.Ball.VY, wantVY)
			}
			off := world.Ball.Radius + config.FlipperPushOut
			if math.Abs(world.Ball.X-(midX+nx*off)) > 1e-6 || math.Abs(world.Ball.Y-(midY+ny*off)) > 1e-6 {
				t.Errorf("ball at (%v,%v), want pushed to (%v,%v)",
					world.Ball.X, world.Ball.Y, midX+nx*off, midY+ny*off)
			}
			if len(rec.events) != 1 {
				t.Fatalf("got %d FlipperHit events, want 1", len(rec.events))
			}
			if d := rec.events[0].Data.(event.FlipperHitData); d.Active != tt.swinging {
				t.Errorf("event Active = %v, want %v", d.Active, tt.swinging)
			}
		})
	}
}

func TestGutterSoftBounce(t *testing.T) {
	world := newTestWorld()
	sys := NewCollisionSystem(world, event.NewDispatcher(), event.NewSchedule())
	sess := playingSession()

	// Точка около середины левого жёлоба (20,550)-(100,650).
	world.Ball.X = 60
	world.Ball.Y = 590
	world.Ball.VX = 0
	world.Ball.VY = 10

	sys.Update(sess)

	speed := math.Hypot(world.Ball.VX, world.Ball.VY)
	if math.Abs(speed-10*config.GutterRestitution) > 1e-9 {
		t.Errorf("speed = %v, want %v (no floor on gutters)", speed, 10*config.GutterRestitution)
	}
	// Шар вытолкнут ровно на границу зазора от отрезка.
	cx, cy := utils.ClosestPointOnSegment(world.Ball.X, world.Ball.Y, 20, 550, 100, 650)
	sep := utils.Dist(world.Ball.X, world.Ball.Y, cx, cy)
	if math.Abs(sep-(world.Ball.Radius+config.GutterMargin)) > 1e-6 {
		t.Errorf("separation = %v, want %v", sep, world.Ball.Radius+config.GutterMargin)
	}
}

func TestDrainDispatchesBallDrained(t *testing.T) {
	world := newTestWorld()
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(event.BallDrained, rec)
	sys := NewCollisionSystem(world, dispatcher, event.NewSchedule())
	sess := playingSession()

	world.Ball.X = 200
	world.Ball.Y = config.DrainY + 5

	sys.Update(sess)

	if len(rec.events) != 1 {
		t.Fatalf("got %d BallDrained events, want 1", len(rec.events))
	}
}

func TestCollisionsInactiveOutsidePlaying(t *testing.T) {
	world := newTestWorld()
	sys := NewCollisionSystem(world, event.NewDispatcher(), event.NewSchedule())

	world.Ball.X = config.PlayfieldLeft - 20
	world.Ball.VX = -10
	sys.Update(&component.Session{Phase: component.PhaseLaunching})

	if world.Ball.VX != -10 {
		t.Errorf("collision resolved outside playing phase: VX=%v", world.Ball.VX)
	}
}
