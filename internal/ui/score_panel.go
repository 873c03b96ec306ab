// internal/ui/score_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
)

// ScorePanel выводит счёт, рекорд и запас шаров в верхнем углу поля.
type ScorePanel struct {
	X, Y float64
	face font.Face
}

func NewScorePanel(x, y float64) *ScorePanel {
	return &ScorePanel{X: x, Y: y, face: basicfont.Face7x13}
}

func (p *ScorePanel) Draw(screen *ebiten.Image, score, highScore, ballsLeft int) {
	x := int(p.X)
	y := int(p.Y)
	text.Draw(screen, fmt.Sprintf("SCORE %06d", score), p.face, x, y, config.TextColor)
	text.Draw(screen, fmt.Sprintf("HIGH  %06d", highScore), p.face, x, y+16, config.TextColor)

	// Оставшиеся шары — кружки под текстом.
	for i := 0; i < ballsLeft; i++ {
		cx := float32(p.X) + 6 + float32(i)*16
		vector.DrawFilledCircle(screen, cx, float32(y)+28, 5, config.BallColor, true)
	}
}
