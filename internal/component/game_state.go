package component

// GamePhase — фаза игры
type GamePhase int

const (
	// BuildState: пауза между волнами, идёт отсчёт до следующей.
	BuildState GamePhase = iota
	WaveState
	GameOverState
)

func (p GamePhase) String() string {
	switch p {
	case BuildState:
		return "build"
	case WaveState:
		return "wave"
	case GameOverState:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState — компонент для хранения состояния игры
type GameState struct {
	Phase GamePhase
	// Countdown is the time left before the next wave starts (BuildState).
	Countdown float64
}
