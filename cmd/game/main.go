// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/clonkbot/neon-pinball-1a356e/internal/app"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/input"
	"github.com/clonkbot/neon-pinball-1a356e/internal/state"
	"github.com/clonkbot/neon-pinball-1a356e/internal/storage"
	"github.com/clonkbot/neon-pinball-1a356e/internal/system"
	"github.com/clonkbot/neon-pinball-1a356e/pkg/render"
)

// AppGame — обёртка ebiten: один Update — один логический тик симуляции.
type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	store := storage.NewFileStore()
	game := app.NewGame(input.NewKeyboard(), store)

	if audio, err := system.NewAudioSystem(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		game.AttachAudio(audio)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewReadyState(sm, game, render.NewRenderer()))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Neon Pinball")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
