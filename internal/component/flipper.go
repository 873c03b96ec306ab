// internal/component/flipper.go
package component

// FlipperSide — сторона флиппера.
type FlipperSide int

const (
	FlipperLeft FlipperSide = iota
	FlipperRight
)

// Flipper — флиппер как отрезок от оси (pivot) длиной Length под углом Angle.
// Angle каждый тик приближается к Target; Rest и Swung — углы покоя и удара,
// между которыми переключается Target в зависимости от ввода.
type Flipper struct {
	PivotX, PivotY float64
	Length         float64
	Angle          float64
	Target         float64
	Rest           float64
	Swung          float64
	Side           FlipperSide
}
