// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит стек состояний. Обновляется только верхнее, рисуются
// все снизу вверх, поэтому пауза может лежать поверх игры.
type StateMachine struct {
	stack []State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState выходит из всех состояний стека и оставляет только newState.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.pop()
	}
	sm.Push(newState)
}

// Push кладёт состояние поверх текущего; текущее не получает Exit.
func (sm *StateMachine) Push(s State) {
	if s == nil {
		return
	}
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop снимает верхнее состояние. Нижнее в стеке не трогается.
func (sm *StateMachine) Pop() {
	if len(sm.stack) > 1 {
		sm.pop()
	}
}

func (sm *StateMachine) pop() {
	top := sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
}

// Current returns the top state, or nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Update обновляет только верхнее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if top := sm.Current(); top != nil {
		top.Update(deltaTime)
	}
}

// Draw отрисовывает стек снизу вверх
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	for _, s := range sm.stack {
		s.Draw(screen)
	}
}
