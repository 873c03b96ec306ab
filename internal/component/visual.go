// internal/component/visual.go
package component

import "image/color"

// Particle — косметическая искра от столкновения. Живёт пока Life > 0.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 → 0
	Color  color.RGBA
}

// TrailPoint — точка светового следа шара. Alpha затухает каждый кадр.
type TrailPoint struct {
	X, Y  float64
	Alpha float64
}
