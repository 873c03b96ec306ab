// internal/component/ball.go
package component

// Ball — шар на игровом поле. Единственный экземпляр; пересоздаётся
// механизмом запуска при каждой новой жизни.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}
