// internal/defs/table.go
package defs

import "math"

// GutterDefinition — наклонный отрезок жёлоба, направляющий шар к флипперу.
type GutterDefinition struct {
	X1, Y1 float64
	X2, Y2 float64
}

// TableGutters — левый и правый жёлобы. Зазор между их нижними концами
// и есть слив: туда шар проваливается между флипперами.
var TableGutters = [2]GutterDefinition{
	{X1: 20, Y1: 550, X2: 100, Y2: 650},
	{X1: 380, Y1: 550, X2: 300, Y2: 650},
}

// FlipperDefinition — ось, длина и пара рабочих углов флиппера.
type FlipperDefinition struct {
	PivotX, PivotY float64
	Length         float64
	Rest           float64 // угол покоя
	Swung          float64 // угол при удержании клавиши
}

// TableFlippers: [0] — левый, [1] — правый.
var TableFlippers = [2]FlipperDefinition{
	{PivotX: 100, PivotY: 655, Length: 70, Rest: 0.4, Swung: -0.5},
	{PivotX: 300, PivotY: 655, Length: 70, Rest: math.Pi - 0.4, Swung: math.Pi + 0.5},
}
