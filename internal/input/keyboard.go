// internal/input/keyboard.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/clonkbot/neon-pinball-1a356e/internal/interfaces"
)

// bindings — физические клавиши каждого действия.
var bindings = map[interfaces.Action][]ebiten.Key{
	interfaces.ActionLeftFlipper:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	interfaces.ActionRightFlipper: {ebiten.KeyArrowRight, ebiten.KeyD},
	interfaces.ActionLaunch:       {ebiten.KeySpace},
	interfaces.ActionStart:        {ebiten.KeySpace, ebiten.KeyEnter},
}

// Keyboard — источник ввода на основе клавиатуры ebiten.
type Keyboard struct{}

func NewKeyboard() Keyboard {
	return Keyboard{}
}

func (Keyboard) IsHeld(a interfaces.Action) bool {
	for _, k := range bindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (Keyboard) JustPressed(a interfaces.Action) bool {
	for _, k := range bindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
