// internal/state/menu_state.go
package state

import (
	"image/color"

	"go-td-sim/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран. По пробелу или клику запускает next.
type MenuState struct {
	sm   *StateMachine
	next func() State
}

func NewMenuState(sm *StateMachine, next func() State) *MenuState {
	return &MenuState{sm: sm, next: next}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.next())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255}) // Чёрный экран
	lines := []string{
		"TOWER DEFENSE",
		"",
		"1/2/3 - choose tower, click - build",
		"P - pause, R - restart after game over",
		"",
		"Press SPACE to start",
	}
	y := config.ScreenHeight/2 - len(lines)*config.HUDLineHeight/2
	for _, line := range lines {
		bounds := text.BoundString(basicfont.Face7x13, line)
		text.Draw(screen, line, basicfont.Face7x13, (config.ScreenWidth-bounds.Dx())/2, y, color.White)
		y += config.HUDLineHeight
	}
}

func (m *MenuState) Exit() {}
