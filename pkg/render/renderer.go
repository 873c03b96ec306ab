// pkg/render/renderer.go
package render

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/clonkbot/neon-pinball-1a356e/internal/app"
	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/defs"
)

// Renderer рисует снимок игрового состояния на экран ebiten. Вся геометрия
// стола статична, поэтому рендерер держит только шрифт и счётчик кадров
// для мигающих подписей.
type Renderer struct {
	face  font.Face
	frame int
}

func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

// Draw — полный кадр: стол, бамперы, флипперы, след, шар, искры.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	r.frame++
	screen.Fill(config.BackgroundColor)
	r.drawTable(screen)
	r.drawBumpers(screen, snap.Bumpers)
	r.drawTrail(screen, snap.Trail)
	r.drawFlippers(screen, snap.Flippers)
	if snap.Phase == component.PhaseLaunching || snap.Phase == component.PhasePlaying {
		r.drawBall(screen, snap.Ball)
	}
	r.drawParticles(screen, snap.Particles)
}

func (r *Renderer) drawTable(screen *ebiten.Image) {
	left := float32(config.PlayfieldLeft)
	right := float32(config.PlayfieldRight)
	top := float32(config.PlayfieldTop)
	bottom := float32(config.ScreenHeight)

	vector.StrokeLine(screen, left, top, right, top, 4, config.WallColor, true)
	vector.StrokeLine(screen, left, top, left, bottom, 4, config.WallColor, true)
	vector.StrokeLine(screen, right, top, right, bottom, 4, config.WallColor, true)

	for _, g := range defs.TableGutters {
		vector.StrokeLine(screen,
			float32(g.X1), float32(g.Y1),
			float32(g.X2), float32(g.Y2),
			5, config.GutterColor, true)
	}
}

func (r *Renderer) drawBumpers(screen *ebiten.Image, bumpers []component.Bumper) {
	for _, bp := range bumpers {
		col := bp.Color
		if bp.Hit {
			col = Lighten(col, 0.7)
		}
		vector.DrawFilledCircle(screen, float32(bp.X), float32(bp.Y), float32(bp.Radius), Darken(col, 0.45), true)
		vector.StrokeCircle(screen, float32(bp.X), float32(bp.Y), float32(bp.Radius), 3, col, true)
		// Ядро бампера.
		vector.DrawFilledCircle(screen, float32(bp.X), float32(bp.Y), float32(bp.Radius)*0.4, col, true)
	}
}

func (r *Renderer) drawFlippers(screen *ebiten.Image, flippers [2]component.Flipper) {
	for _, f := range flippers {
		tipX := f.PivotX + math.Cos(f.Angle)*f.Length
		tipY := f.PivotY + math.Sin(f.Angle)*f.Length
		vector.StrokeLine(screen,
			float32(f.PivotX), float32(f.PivotY),
			float32(tipX), float32(tipY),
			float32(config.FlipperHalfWidth)*2, config.FlipperColor, true)
		vector.DrawFilledCircle(screen, float32(f.PivotX), float32(f.PivotY), float32(config.FlipperHalfWidth), config.FlipperColor, true)
		vector.DrawFilledCircle(screen, float32(tipX), float32(tipY), float32(config.FlipperHalfWidth)*0.8, config.FlipperColor, true)
	}
}

func (r *Renderer) drawTrail(screen *ebiten.Image, trail []component.TrailPoint) {
	for _, tp := range trail {
		vector.DrawFilledCircle(screen, float32(tp.X), float32(tp.Y),
			float32(config.BallRadius)*0.7,
			WithAlpha(config.TrailColor, tp.Alpha*0.5), true)
	}
}

func (r *Renderer) drawBall(screen *ebiten.Image, ball component.Ball) {
	// Лёгкое свечение под шаром.
	vector.DrawFilledCircle(screen, float32(ball.X), float32(ball.Y), float32(ball.Radius)*1.8, WithAlpha(config.TrailColor, 0.25), true)
	vector.DrawFilledCircle(screen, float32(ball.X), float32(ball.Y), float32(ball.Radius), config.BallColor, true)
}

func (r *Renderer) drawParticles(screen *ebiten.Image, particles []component.Particle) {
	for _, p := range particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2.5, WithAlpha(p.Color, p.Life), true)
	}
}

// DrawTitle — титульный экран с рекордом и мигающей подсказкой.
func (r *Renderer) DrawTitle(screen *ebiten.Image, highScore int) {
	r.frame++
	screen.Fill(config.BackgroundColor)
	r.drawTable(screen)
	text.Draw(screen, "NEON PINBALL", r.face, config.ScreenWidth/2-42, 220, config.AccentColor)
	text.Draw(screen, fmt.Sprintf("HIGH SCORE %06d", highScore), r.face, config.ScreenWidth/2-56, 260, config.TextColor)
	if r.frame/30%2 == 0 {
		text.Draw(screen, "PRESS SPACE", r.face, config.ScreenWidth/2-38, 330, config.TextColor)
	}
}

// DrawGameOver — затемнение поверх стола и итог партии.
func (r *Renderer) DrawGameOver(screen *ebiten.Image, snap app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.DimOverlay, false)
	text.Draw(screen, "GAME OVER", r.face, config.ScreenWidth/2-31, 300, config.AccentColor)
	text.Draw(screen, fmt.Sprintf("SCORE %06d", snap.Score), r.face, config.ScreenWidth/2-42, 330, config.TextColor)
	if snap.Score >= snap.HighScore && snap.Score > 0 {
		text.Draw(screen, "NEW HIGH SCORE!", r.face, config.ScreenWidth/2-52, 360, config.GaugeFillColor)
	}
	if r.frame/30%2 == 0 {
		text.Draw(screen, "PRESS SPACE", r.face, config.ScreenWidth/2-38, 410, config.TextColor)
	}
}

// DrawLaunchHint — подсказка в фазе запуска.
func (r *Renderer) DrawLaunchHint(screen *ebiten.Image) {
	text.Draw(screen, "HOLD SPACE TO CHARGE", r.face, config.ScreenWidth/2-70, 520, WithAlpha(config.TextColor, 0.8))
}
