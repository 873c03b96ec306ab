// internal/component/session.go
package component

// Phase — фаза игровой сессии.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseLaunching
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseLaunching:
		return "launching"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// Session — счёт, рекорд, запас шаров и заряд плунжера текущей партии.
// LaunchPower имеет смысл только в фазе launching.
type Session struct {
	Phase       Phase
	Score       int
	HighScore   int
	BallsLeft   int
	LaunchPower float64
}
