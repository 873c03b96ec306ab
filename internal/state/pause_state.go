// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: тики не идут, предыдущий экран
// рисуется подложкой под затемнением.
type PauseState struct {
	sm       *StateMachine
	previous State
}

func NewPauseState(sm *StateMachine, previous State) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.DimOverlay, false)
	text.Draw(screen, "PAUSED", basicfont.Face7x13, config.ScreenWidth/2-21, config.ScreenHeight/2, config.TextColor)
}

func (s *PauseState) Exit() {}
