// internal/system/helpers_test.go
package system

import (
	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/entity"
	"github.com/clonkbot/neon-pinball-1a356e/internal/event"
	"github.com/clonkbot/neon-pinball-1a356e/internal/interfaces"
)

// fakeInput — управляемый источник ввода для тестов.
type fakeInput struct {
	held    map[interfaces.Action]bool
	pressed map[interfaces.Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		held:    make(map[interfaces.Action]bool),
		pressed: make(map[interfaces.Action]bool),
	}
}

func (f *fakeInput) IsHeld(a interfaces.Action) bool      { return f.held[a] }
func (f *fakeInput) JustPressed(a interfaces.Action) bool { return f.pressed[a] }

// recorder собирает все события одного типа.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func playingSession() *component.Session {
	return &component.Session{Phase: component.PhasePlaying, BallsLeft: 3}
}

func newTestWorld() *entity.World {
	return entity.NewWorld()
}
