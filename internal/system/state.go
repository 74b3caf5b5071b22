// internal/system/state.go
package system

import (
	"log"

	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
)

// StateSystem следит за концом игры.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update switches to GameOverState once lives run out. The transition is
// final and the GameOver event fires once.
func (s *StateSystem) Update() {
	if s.IsGameOver() || s.ecs.Player.Lives > 0 {
		return
	}
	s.ecs.GameState.Phase = component.GameOverState
	s.ecs.GameState.Countdown = 0
	waveNumber := 0
	if s.ecs.Wave != nil {
		waveNumber = s.ecs.Wave.Number
	}
	log.Printf("Game over on wave %d (kills: %d)", waveNumber, s.ecs.Player.Kills)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: waveNumber})
}

func (s *StateSystem) IsGameOver() bool {
	return s.ecs.GameState.Phase == component.GameOverState
}

// Current returns the game phase.
func (s *StateSystem) Current() component.GamePhase {
	return s.ecs.GameState.Phase
}
