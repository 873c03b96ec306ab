// internal/component/bumper.go
package component

import "image/color"

// Bumper — круглый бампер. Позиция неизменна, создаётся один раз при старте.
// Hit — чисто визуальный флаг вспышки, гасится планировщиком через несколько
// тиков и никак не влияет на начисление очков.
type Bumper struct {
	X, Y   float64
	Radius float64
	Points int
	Hit    bool
	Color  color.RGBA
}
