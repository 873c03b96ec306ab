// pkg/render/color.go
package render

import "image/color"

// WithAlpha масштабирует цвет и его альфу коэффициентом a∈[0,1] —
// подходит для затухающих следов и искр.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Darken уменьшает яркость цвета.
func Darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// Lighten подмешивает белый — для вспышки бампера.
func Lighten(c color.RGBA, f float64) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*f)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
