// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach двигает value к target на долю factor за тик —
// экспоненциальное приближение, цели никогда не достигает точно.
func Approach(value, target, factor float64) float64 {
	return value + (target-value)*factor
}

// Dist возвращает евклидово расстояние между точками.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// ClosestPointOnSegment возвращает ближайшую к (px,py) точку отрезка
// (x1,y1)-(x2,y2). Параметр проекции зажимается в [0,1]; отрезки стола
// имеют ненулевую длину, так что деления на ноль здесь нет.
func ClosestPointOnSegment(px, py, x1, y1, x2, y2 float64) (float64, float64) {
	dx := x2 - x1
	dy := y2 - y1
	t := ((px-x1)*dx + (py-y1)*dy) / (dx*dx + dy*dy)
	t = Clamp(t, 0, 1)
	return x1 + dx*t, y1 + dy*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
