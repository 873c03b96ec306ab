// internal/ui/power_gauge.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
)

// PowerGauge — вертикальная шкала заряда плунжера. Видна только в фазе
// запуска; заполняется снизу вверх и краснеет к максимуму.
type PowerGauge struct {
	X, Y          float32
	Width, Height float32
}

func NewPowerGauge(x, y, width, height float32) *PowerGauge {
	return &PowerGauge{X: x, Y: y, Width: width, Height: height}
}

// Draw рисует шкалу для power ∈ [0, 100].
func (g *PowerGauge) Draw(screen *ebiten.Image, power float64) {
	vector.DrawFilledRect(screen, g.X, g.Y, g.Width, g.Height, config.GaugeBackColor, false)

	frac := float32(power / config.MaxLaunchPower)
	fillH := g.Height * frac
	col := config.GaugeFillColor
	if frac > 0.75 {
		col = config.AccentColor
	}
	vector.DrawFilledRect(screen, g.X, g.Y+g.Height-fillH, g.Width, fillH, col, false)
	vector.StrokeRect(screen, g.X, g.Y, g.Width, g.Height, 2, config.WallColor, false)
}
