// internal/ui/speed_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает множитель скорости игры (x1 → x2 → x4 → x1).
type SpeedButton struct {
	X, Y         float32
	Size         float32
	StateColors  []color.RGBA
	Multipliers  []float64
	CurrentState int
	pulse        pulse
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA, multipliers []float64) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Multipliers: multipliers,
	}
}

func (b *SpeedButton) Update(dt float64) {
	b.pulse.Update(dt)
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	size := b.Size * b.pulse.Scale()
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := size * 1.2
	width := size
	offset := width * 0.8

	// Два треугольника ">>"
	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		painter.Fill(screen, &path, clr)
	}
}

// Contains uses a circle for hit testing since the shape is irregular.
func (b *SpeedButton) Contains(x, y float32) bool {
	dx, dy := x-b.X, y-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// Toggle switches to the next speed and returns its multiplier.
func (b *SpeedButton) Toggle() float64 {
	b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	b.pulse.Start()
	return b.Multipliers[b.CurrentState]
}
