// internal/event/types.go
package event

import "image/color"

const (
	BumperHit    EventType = "BumperHit"    // Шар ударил бампер
	FlipperHit   EventType = "FlipperHit"   // Шар отбит флиппером
	WallHit      EventType = "WallHit"      // Отскок от стены
	GutterHit    EventType = "GutterHit"    // Отскок от жёлоба
	BallLaunched EventType = "BallLaunched" // Плунжер выпустил шар
	BallDrained  EventType = "BallDrained"  // Шар потерян в сливе
	GameOver     EventType = "GameOver"     // Шары закончились
	NewHighScore EventType = "NewHighScore" // Побит рекорд
)

// BumperHitData — точка контакта, цвет и очки бампера.
type BumperHitData struct {
	Index  int
	Points int
	X, Y   float64
	Color  color.RGBA
}

// FlipperHitData — точка контакта и был ли удар активным (флиппер в движении).
type FlipperHitData struct {
	X, Y   float64
	Active bool
}

// WallHitData — точка отскока и скорость до него.
type WallHitData struct {
	X, Y  float64
	Speed float64
}

// BallLaunchedData — мощность, с которой шар ушёл со стартового жёлоба.
type BallLaunchedData struct {
	Power float64
}
