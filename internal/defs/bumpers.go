// internal/defs/bumpers.go
package defs

import "image/color"

// BumperDefinition описывает один бампер на столе.
type BumperDefinition struct {
	X, Y   float64
	Radius float64
	Points int
	Color  color.RGBA
}

// TableBumpers — фиксированная раскладка из шести бамперов.
// Чем ниже и ближе к флипперам бампер, тем он дороже.
var TableBumpers = []BumperDefinition{
	{X: 110, Y: 160, Radius: 22, Points: 100, Color: color.RGBA{255, 64, 129, 255}},
	{X: 290, Y: 160, Radius: 22, Points: 100, Color: color.RGBA{64, 196, 255, 255}},
	{X: 200, Y: 110, Radius: 24, Points: 150, Color: color.RGBA{255, 214, 0, 255}},
	{X: 140, Y: 300, Radius: 20, Points: 200, Color: color.RGBA{118, 255, 3, 255}},
	{X: 260, Y: 300, Radius: 20, Points: 200, Color: color.RGBA{224, 64, 251, 255}},
	{X: 200, Y: 420, Radius: 18, Points: 300, Color: color.RGBA{255, 109, 0, 255}},
}
