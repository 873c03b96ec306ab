// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/clonkbot/neon-pinball-1a356e/internal/app"
	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/ui"
	"github.com/clonkbot/neon-pinball-1a356e/pkg/render"
)

// PlayState — игровой экран. Фазы launching/playing/gameover живут внутри
// сессии; состояние лишь гоняет тики и рисует снимок с панелями.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
	panel    *ui.ScorePanel
	gauge    *ui.PowerGauge
}

func NewPlayState(sm *StateMachine, game *app.Game, renderer *render.Renderer) *PlayState {
	return &PlayState{
		sm:       sm,
		game:     game,
		renderer: renderer,
		panel:    ui.NewScorePanel(config.ScorePanelX, config.ScorePanelY),
		gauge:    ui.NewPowerGauge(config.GaugeX, config.GaugeY, config.GaugeWidth, config.GaugeHeight),
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	s.game.Step()
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()
	s.renderer.Draw(screen, snap)
	s.panel.Draw(screen, snap.Score, snap.HighScore, snap.BallsLeft)

	switch snap.Phase {
	case component.PhaseLaunching:
		s.gauge.Draw(screen, snap.LaunchPower)
		s.renderer.DrawLaunchHint(screen)
	case component.PhaseGameOver:
		s.renderer.DrawGameOver(screen, snap)
	}
}

func (s *PlayState) Exit() {}
