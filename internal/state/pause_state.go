// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-td-sim/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// pausable — состояние под паузой, которое показывает её на своей кнопке.
type pausable interface {
	SetPaused(paused bool)
}

// PauseState лежит поверх игры в стеке: игра рисуется, но не обновляется.
type PauseState struct {
	stateMachine *StateMachine
	paused       pausable
}

func NewPauseState(sm *StateMachine, paused pausable) *PauseState {
	return &PauseState{
		stateMachine: sm,
		paused:       paused,
	}
}

func (s *PauseState) Enter() {
	s.paused.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if unpause {
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	const pauseText = "PAUSED"
	bounds := text.BoundString(basicfont.Face7x13, pauseText)
	text.Draw(screen, pauseText, basicfont.Face7x13, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {
	s.paused.SetPaused(false)
}
