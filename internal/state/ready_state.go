// internal/state/ready_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/clonkbot/neon-pinball-1a356e/internal/app"
	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/pkg/render"
)

// ReadyState — титульный экран. Стартовый ввод потребляет само ядро
// (переход ready→launching); состояние лишь ждёт смены фазы и уходит
// на игровой экран.
type ReadyState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
}

func NewReadyState(sm *StateMachine, game *app.Game, renderer *render.Renderer) *ReadyState {
	return &ReadyState{sm: sm, game: game, renderer: renderer}
}

func (s *ReadyState) Enter() {}

func (s *ReadyState) Update() {
	s.game.Step()
	if s.game.Session.Phase != component.PhaseReady {
		s.sm.SetState(NewPlayState(s.sm, s.game, s.renderer))
	}
}

func (s *ReadyState) Draw(screen *ebiten.Image) {
	s.renderer.DrawTitle(screen, s.game.Session.HighScore)
}

func (s *ReadyState) Exit() {}
