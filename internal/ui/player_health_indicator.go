// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	healthCircleRadius  = 6.0
	healthCircleSpacing = 3.0
)

// PlayerHealthIndicator отображает жизни игрока сеткой кружков и золото
// анимированным счётчиком.
type PlayerHealthIndicator struct {
	X, Y      float32
	Cols      int
	LifeColor color.RGBA
	LostColor color.RGBA
	TextColor color.RGBA
	gold      *Counter
	lives     *Counter
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, cols int, gold, lives int) *PlayerHealthIndicator {
	if cols <= 0 {
		cols = 10
	}
	return &PlayerHealthIndicator{
		X:         x,
		Y:         y,
		Cols:      cols,
		LifeColor: color.RGBA{220, 40, 40, 255},
		LostColor: color.RGBA{40, 40, 40, 255},
		TextColor: color.RGBA{20, 20, 30, 255},
		gold:      NewCounter(gold),
		lives:     NewCounter(lives),
	}
}

// Update feeds the current economy into the counters.
func (i *PlayerHealthIndicator) Update(dt float64, gold, lives int) {
	i.gold.SetTarget(gold)
	i.lives.SetTarget(lives)
	i.gold.Update(dt)
	i.lives.Update(dt)
}

// Draw рисует индикатор здоровья игрока в виде сетки кружков.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, maxLives int) {
	lives := i.lives.Value()
	step := float32(healthCircleRadius*2 + healthCircleSpacing)

	for j := 0; j < maxLives; j++ {
		row := j / i.Cols
		col := j % i.Cols
		cx := i.X + float32(col)*step + healthCircleRadius
		cy := i.Y + float32(row)*step + healthCircleRadius

		clr := i.LostColor
		if j < lives {
			clr = i.LifeColor
		}
		vector.DrawFilledCircle(screen, cx, cy, healthCircleRadius, clr, true)
		vector.StrokeCircle(screen, cx, cy, healthCircleRadius, 1, color.White, true)
	}

	rows := (maxLives + i.Cols - 1) / i.Cols
	textY := int(i.Y+float32(rows)*step) + 14
	label := fmt.Sprintf("Lives: %d/%d   Gold: %d", lives, maxLives, i.gold.Value())
	clr := i.TextColor
	if i.gold.Animating() {
		// Пока золото докручивается, подсвечиваем строку.
		clr = color.RGBA{180, 140, 20, 255}
	}
	text.Draw(screen, label, basicfont.Face7x13, int(i.X), textY, clr)
}

// Height возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) Height(maxLives int) float32 {
	rows := (maxLives + i.Cols - 1) / i.Cols
	return float32(rows)*(healthCircleRadius*2+healthCircleSpacing) + 20
}
