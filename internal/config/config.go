// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 400
	ScreenHeight = 700

	// Границы игрового поля (в пикселях поля).
	PlayfieldLeft  = 20.0
	PlayfieldRight = 380.0
	PlayfieldTop   = 20.0
	// Порог потери шара — ниже видимой области, чтобы шар успел уйти с экрана.
	DrainY = 780.0

	BallRadius = 8.0
	// Позиция покоя шара в жёлобе запуска.
	LaunchX = 365.0
	LaunchY = 600.0
)

// Физика шара: значения на один тик (тик == кадр при 60 TPS).
const (
	Gravity  = 0.15
	Friction = 0.995
)

// Столкновения.
const (
	WallRestitution   = 0.8
	GutterRestitution = 0.7
	GutterMargin      = 3.0

	BumperBoost    = 1.2
	BumperMinSpeed = 8.0
	HitFlashTicks  = 6 // ~100 мс при 60 тиках в секунду

	FlipperSpeed        = 0.35
	FlipperHalfWidth    = 8.0
	FlipperPushOut      = 10.0
	FlipperSwingEps     = 0.1 // порог |target-angle|, после которого удар считается активным
	FlipperActiveBoost  = 15.0
	FlipperPassiveBoost = 5.0
	FlipperLift         = -3.0
)

// Плунжер.
const (
	ChargePerTick  = 2.0
	MaxLaunchPower = 100.0
	LaunchFactor   = 0.3
	LaunchNudge    = -2.0
)

const BallsPerGame = 3

// Косметика.
const (
	MaxParticles         = 256
	BumperParticleCount  = 15
	FlipperParticleCount = 5
	ParticleDecay        = 0.03
	ParticleGravity      = 0.1

	TrailMax      = 20
	TrailDecay    = 0.9
	TrailMinAlpha = 0.05
)

// UI.
const (
	ScorePanelX = 28
	ScorePanelY = 36
	GaugeX      = 330
	GaugeY      = 640
	GaugeWidth  = 12
	GaugeHeight = 90
)

var (
	BackgroundColor = color.RGBA{10, 8, 24, 255}
	WallColor       = color.RGBA{96, 72, 168, 255}
	GutterColor     = color.RGBA{70, 54, 128, 255}
	BallColor       = color.RGBA{245, 245, 255, 255}
	FlipperColor    = color.RGBA{0, 229, 255, 255}
	TrailColor      = color.RGBA{130, 170, 255, 255}

	// Искры от флиппера — циановые.
	FlipperSparkColor = color.RGBA{0, 255, 255, 255}

	TextColor      = color.RGBA{230, 230, 245, 255}
	AccentColor    = color.RGBA{255, 64, 129, 255}
	DimOverlay     = color.RGBA{0, 0, 0, 150}
	GaugeBackColor = color.RGBA{40, 34, 70, 255}
	GaugeFillColor = color.RGBA{118, 255, 3, 255}
)
