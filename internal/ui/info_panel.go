// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"go-td-sim/internal/config"
	"go-td-sim/internal/interfaces"
	"go-td-sim/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	panelHeight  = 90
	panelWidth   = 260
	panelMargin  = 5
	lineHeight   = 16
	slideSeconds = 0.25
)

// InfoPanel выезжает снизу и показывает параметры выбранной башни или врага.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	fontFace     font.Face
	currentY     float32
	slide        *gween.Tween
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		fontFace: basicfont.Face7x13,
		currentY: config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	if p.TargetEntity == entityID && p.IsVisible {
		return
	}
	p.TargetEntity = entityID
	p.IsVisible = true
	p.slide = gween.New(p.currentY, config.ScreenHeight-panelHeight, slideSeconds, ease.OutQuad)
}

func (p *InfoPanel) Hide() {
	if !p.IsVisible {
		return
	}
	p.IsVisible = false
	p.slide = gween.New(p.currentY, config.ScreenHeight, slideSeconds, ease.InQuad)
}

func (p *InfoPanel) Update(dt float64) {
	if p.slide == nil {
		return
	}
	val, done := p.slide.Update(float32(dt))
	p.currentY = val
	if done {
		p.slide = nil
		if !p.IsVisible {
			p.TargetEntity = types.NoEntity
		}
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, game interfaces.GameView) {
	if p.TargetEntity == types.NoEntity || p.currentY >= config.ScreenHeight {
		return
	}

	x := float32(panelMargin)
	y := p.currentY + panelMargin
	w := float32(panelWidth)
	h := float32(panelHeight - 2*panelMargin)
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 25, G: 35, B: 45, A: 230}, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 70, G: 130, B: 180, A: 255}, true)

	lines := p.describe(game)
	if lines == nil {
		// Враг уже ушёл с поля.
		p.Hide()
		return
	}
	for i, line := range lines {
		text.Draw(screen, line, p.fontFace, int(x)+10, int(y)+18+i*lineHeight, config.TextLightColor)
	}
}

func (p *InfoPanel) describe(game interfaces.GameView) []string {
	for _, t := range game.Towers() {
		if t.ID != p.TargetEntity {
			continue
		}
		def, _ := game.Definitions().Tower(t.Kind)
		name := def.Name
		if name == "" {
			name = string(t.Kind)
		}
		return []string{
			name,
			fmt.Sprintf("Damage: %d   Fire Rate: %.1f/s", def.Damage, def.FireRate),
			fmt.Sprintf("Range: %.0f   Aim: %s", t.Range, def.Aim),
			fmt.Sprintf("Projectile: %s", def.Projectile),
		}
	}
	for _, e := range game.Enemies() {
		if e.ID != p.TargetEntity {
			continue
		}
		name := e.DefID
		if def, ok := game.Definitions().Enemy(e.DefID); ok {
			name = def.Name
		}
		return []string{
			name,
			fmt.Sprintf("Health: %d / %d", e.Health, e.MaxHealth),
			fmt.Sprintf("State: %s", e.State),
		}
	}
	return nil
}
