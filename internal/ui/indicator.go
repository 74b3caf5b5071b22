// internal/ui/indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок фазы игры: строительство или волна. Вокруг
// рисуется дуга обратного отсчёта до следующей волны.
type StateIndicator struct {
	X, Y   float32
	Radius float32
	pulse  pulse
	last   color.RGBA
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

func (i *StateIndicator) Update(dt float64) {
	i.pulse.Update(dt)
}

// Draw draws the indicator; progress in [0,1] is the share of the countdown
// left, 0 hides the arc.
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA, progress float64) {
	if stateColor != i.last {
		i.pulse.Start()
		i.last = stateColor
	}
	r := i.Radius * i.pulse.Scale()
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)

	if progress > 0 {
		var path vector.Path
		const start = -1.5707963267948966 // -π/2, отсчёт сверху
		path.Arc(i.X, i.Y, r+4, start, start+float32(progress)*2*3.141592653589793, vector.Clockwise)
		painter.Stroke(screen, &path, 2, stateColor)
	}
}
