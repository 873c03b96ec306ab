// internal/interfaces/input.go
package interfaces

// Action — логическая клавиша, которую опрашивает ядро. Ядро не знает,
// какие физические клавиши за ней стоят.
type Action int

const (
	ActionLeftFlipper Action = iota
	ActionRightFlipper
	ActionLaunch
	ActionStart
)

// InputSource отдаёт текущее множество удерживаемых действий.
// Ядро только читает состояние; захват ввода живёт снаружи.
type InputSource interface {
	IsHeld(a Action) bool
	JustPressed(a Action) bool
}
