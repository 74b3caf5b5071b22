// internal/ui/tower_palette.go
package ui

import (
	"fmt"
	"image/color"

	"go-td-sim/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	paletteSlotWidth  = 150
	paletteSlotHeight = 36
	paletteSpacing    = 8
)

// TowerPalette — панель выбора башни. Клавиши 1..N выбирают вид башни.
type TowerPalette struct {
	X, Y     int
	Selected int
	Kinds    []defs.TowerKind
}

func NewTowerPalette(x, y int, kinds []defs.TowerKind) *TowerPalette {
	return &TowerPalette{X: x, Y: y, Kinds: kinds}
}

// Select picks the slot by index; out-of-range values are ignored.
func (p *TowerPalette) Select(index int) {
	if index >= 0 && index < len(p.Kinds) {
		p.Selected = index
	}
}

// Current returns the selected tower kind.
func (p *TowerPalette) Current() (defs.TowerKind, bool) {
	if p.Selected < 0 || p.Selected >= len(p.Kinds) {
		return "", false
	}
	return p.Kinds[p.Selected], true
}

// SlotAt returns the slot under the cursor, or -1.
func (p *TowerPalette) SlotAt(x, y int) int {
	for i := range p.Kinds {
		sx := p.X + i*(paletteSlotWidth+paletteSpacing)
		if x >= sx && x < sx+paletteSlotWidth && y >= p.Y && y < p.Y+paletteSlotHeight {
			return i
		}
	}
	return -1
}

func (p *TowerPalette) Draw(screen *ebiten.Image, library *defs.Library, gold int) {
	for i, kind := range p.Kinds {
		def, ok := library.Tower(kind)
		if !ok {
			continue
		}
		sx := float32(p.X + i*(paletteSlotWidth+paletteSpacing))
		sy := float32(p.Y)

		bg := color.RGBA{25, 35, 45, 220}
		if gold < def.Cost {
			bg = color.RGBA{70, 40, 40, 220}
		}
		vector.DrawFilledRect(screen, sx, sy, paletteSlotWidth, paletteSlotHeight, bg, true)
		border := color.RGBA{90, 90, 90, 255}
		if i == p.Selected {
			border = color.RGBA{255, 215, 0, 255}
		}
		vector.StrokeRect(screen, sx, sy, paletteSlotWidth, paletteSlotHeight, 2, border, true)
		vector.DrawFilledCircle(screen, sx+18, sy+paletteSlotHeight/2, 8, def.Visuals.RGBA(), true)

		label := fmt.Sprintf("%d %s", i+1, def.Name)
		text.Draw(screen, label, basicfont.Face7x13, int(sx)+32, int(sy)+15, color.White)
		text.Draw(screen, fmt.Sprintf("%dg  r%.0f", def.Cost, def.Range), basicfont.Face7x13, int(sx)+32, int(sy)+30, color.RGBA{200, 200, 200, 255})
	}
}
