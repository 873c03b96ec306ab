// internal/system/collision.go
package system

import (
	"math"

	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/defs"
	"github.com/clonkbot/neon-pinball-1a356e/internal/entity"
	"github.com/clonkbot/neon-pinball-1a356e/internal/event"
	"github.com/clonkbot/neon-pinball-1a356e/internal/utils"
)

// CollisionSystem разрешает контакты шара со стенами, бамперами, флипперами
// и жёлобами. Порядок проверок фиксирован: боковые стены, верх, бамперы,
// флипперы, жёлобы; поздняя правка позиции перекрывает раннюю в пределах
// одного тика. Последним идёт слив.
type CollisionSystem struct {
	world    *entity.World
	events   *event.Dispatcher
	schedule *event.Schedule
}

func NewCollisionSystem(world *entity.World, events *event.Dispatcher, schedule *event.Schedule) *CollisionSystem {
	return &CollisionSystem{world: world, events: events, schedule: schedule}
}

func (s *CollisionSystem) Update(sess *component.Session) {
	if sess.Phase != component.PhasePlaying {
		return
	}
	b := s.world.Ball
	s.resolveSideWalls(b)
	s.resolveTopWall(b)
	s.resolveBumpers(b, sess)
	s.resolveFlippers(b)
	s.resolveGutters(b)
	s.checkDrain(b)
}

// resolveSideWalls зажимает шар в x∈[left+r, right-r] и отражает vx
// с коэффициентом восстановления стены.
func (s *CollisionSystem) resolveSideWalls(b *component.Ball) {
	left := config.PlayfieldLeft + b.Radius
	right := config.PlayfieldRight - b.Radius
	if b.X < left {
		speed := math.Hypot(b.VX, b.VY)
		b.X = left
		b.VX = -b.VX * config.WallRestitution
		s.events.Dispatch(event.Event{Type: event.WallHit, Data: event.WallHitData{X: b.X, Y: b.Y, Speed: speed}})
	} else if b.X > right {
		speed := math.Hypot(b.VX, b.VY)
		b.X = right
		b.VX = -b.VX * config.WallRestitution
		s.events.Dispatch(event.Event{Type: event.WallHit, Data: event.WallHitData{X: b.X, Y: b.Y, Speed: speed}})
	}
}

func (s *CollisionSystem) resolveTopWall(b *component.Ball) {
	top := config.PlayfieldTop + b.Radius
	if b.Y < top {
		speed := math.Hypot(b.VX, b.VY)
		b.Y = top
		b.VY = -b.VY * config.WallRestitution
		s.events.Dispatch(event.Event{Type: event.WallHit, Data: event.WallHitData{X: b.X, Y: b.Y, Speed: speed}})
	}
}

// resolveBumpers: при перекрытии шар выталкивается наружу вдоль контактной
// нормали и получает скорость max(текущая*1.2, 8) в её направлении. Очки
// начисляются на каждом обнаруженном перекрытии; выталкивание гарантирует,
// что перекрытие живёт один тик, так что на практике это один удар — одно
// начисление. Вспышка Hit гасится планировщиком через HitFlashTicks.
func (s *CollisionSystem) resolveBumpers(b *component.Ball, sess *component.Session) {
	for i, bp := range s.world.Bumpers {
		dx := b.X - bp.X
		dy := b.Y - bp.Y
		if math.Hypot(dx, dy) >= b.Radius+bp.Radius {
			continue
		}
		angle := math.Atan2(dy, dx)
		speed := math.Hypot(b.VX, b.VY) * config.BumperBoost
		if speed < config.BumperMinSpeed {
			speed = config.BumperMinSpeed
		}
		b.VX = math.Cos(angle) * speed
		b.VY = math.Sin(angle) * speed

		// Сразу за границу перекрытия, чтобы следующий тик не засчитал
		// тот же контакт ещё раз.
		sep := b.Radius + bp.Radius + 1
		b.X = bp.X + math.Cos(angle)*sep
		b.Y = bp.Y + math.Sin(angle)*sep

		bp.Hit = true
		target := bp
		s.schedule.After(s.world.Tick, config.HitFlashTicks, func() { target.Hit = false })

		sess.Score += bp.Points
		s.events.Dispatch(event.Event{Type: event.BumperHit, Data: event.BumperHitData{
			Index:  i,
			Points: bp.Points,
			X:      bp.X,
			Y:      bp.Y,
			Color:  bp.Color,
		}})
	}
}

// resolveFlippers моделирует флиппер отрезком от оси до кончика под текущим
// углом. Если флиппер в движении (|target-angle| > порога), шар получает
// сильный импульс, иначе слабый; в обоих случаях к vy добавляется подброс.
func (s *CollisionSystem) resolveFlippers(b *component.Ball) {
	for _, f := range s.world.Flippers {
		tipX := f.PivotX + math.Cos(f.Angle)*f.Length
		tipY := f.PivotY + math.Sin(f.Angle)*f.Length
		cx, cy := utils.ClosestPointOnSegment(b.X, b.Y, f.PivotX, f.PivotY, tipX, tipY)
		dx := b.X - cx
		dy := b.Y - cy
		if math.Hypot(dx, dy) >= b.Radius+config.FlipperHalfWidth {
			continue
		}
		normal := math.Atan2(dy, dx)
		active := math.Abs(f.Target-f.Angle) > config.FlipperSwingEps
		speed := config.FlipperPassiveBoost
		if active {
			speed = config.FlipperActiveBoost
		}
		b.VX = math.Cos(normal) * speed
		b.VY = math.Sin(normal)*speed + config.FlipperLift

		off := b.Radius + config.FlipperPushOut
		b.X = cx + math.Cos(normal)*off
		b.Y = cy + math.Sin(normal)*off

		s.events.Dispatch(event.Event{Type: event.FlipperHit, Data: event.FlipperHitData{
			X:      cx,
			Y:      cy,
			Active: active,
		}})
	}
}

// resolveGutters — те же отрезки, что и флипперы, но с меньшим зазором и
// мягким отскоком 0.7 без нижнего порога скорости.
func (s *CollisionSystem) resolveGutters(b *component.Ball) {
	for _, g := range defs.TableGutters {
		cx, cy := utils.ClosestPointOnSegment(b.X, b.Y, g.X1, g.Y1, g.X2, g.Y2)
		dx := b.X - cx
		dy := b.Y - cy
		if math.Hypot(dx, dy) >= b.Radius+config.GutterMargin {
			continue
		}
		normal := math.Atan2(dy, dx)
		speed := math.Hypot(b.VX, b.VY) * config.GutterRestitution
		b.VX = math.Cos(normal) * speed
		b.VY = math.Sin(normal) * speed

		off := b.Radius + config.GutterMargin
		b.X = cx + math.Cos(normal)*off
		b.Y = cy + math.Sin(normal)*off

		s.events.Dispatch(event.Event{Type: event.GutterHit, Data: event.WallHitData{X: cx, Y: cy, Speed: speed}})
	}
}

func (s *CollisionSystem) checkDrain(b *component.Ball) {
	if b.Y > config.DrainY {
		s.events.Dispatch(event.Event{Type: event.BallDrained})
	}
}
