// pkg/render/draw.go
package render

import (
	"image/color"
	"math"

	"go-td-sim/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawPath draws the polyline as thick segments with round joints.
func DrawPath(screen *ebiten.Image, points []geom.Vec, width float32, clr color.Color) {
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
	for _, p := range points {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), width/2, clr, true)
	}
}

// DrawCircle draws a filled circle with an optional outline.
func DrawCircle(screen *ebiten.Image, x, y float64, radius float32, fill color.Color, stroke color.Color, strokeWidth float32) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), radius, fill, true)
	if stroke != nil && strokeWidth > 0 {
		vector.StrokeCircle(screen, float32(x), float32(y), radius, strokeWidth, stroke, true)
	}
}

// DrawRange draws a translucent tower range.
func DrawRange(screen *ebiten.Image, x, y, radius float64, clr color.Color) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), clr, true)
}

// DrawHealthBar draws a bar centered above (x, y); fraction is clamped to [0,1].
func DrawHealthBar(screen *ebiten.Image, x, y float64, width, height float32, fraction float64, back, front color.Color) {
	fraction = geom.ClampF(fraction, 0, 1)
	left := float32(x) - width/2
	top := float32(y)
	vector.DrawFilledRect(screen, left, top, width, height, back, false)
	if fraction > 0 {
		vector.DrawFilledRect(screen, left, top, width*float32(fraction), height, front, false)
	}
}

// DrawBarrel draws a turret barrel from the center in the given direction.
func DrawBarrel(screen *ebiten.Image, x, y, angle float64, length, width float32, clr color.Color) {
	ex := x + math.Cos(angle)*float64(length)
	ey := y + math.Sin(angle)*float64(length)
	vector.StrokeLine(screen, float32(x), float32(y), float32(ex), float32(ey), width, clr, true)
}

// DrawSquare draws an axis-aligned square centered at (x, y).
func DrawSquare(screen *ebiten.Image, x, y float64, half float32, fill color.Color, stroke color.Color, strokeWidth float32) {
	left, top := float32(x)-half, float32(y)-half
	vector.DrawFilledRect(screen, left, top, 2*half, 2*half, fill, true)
	if stroke != nil && strokeWidth > 0 {
		vector.StrokeRect(screen, left, top, 2*half, 2*half, strokeWidth, stroke, true)
	}
}

// Painter fills and strokes vector paths, reusing its vertex buffers
// between calls.
type Painter struct {
	img *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

func NewPainter() *Painter {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return &Painter{img: img}
}

func (p *Painter) Fill(target *ebiten.Image, path *vector.Path, clr color.RGBA) {
	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	p.draw(target, clr)
}

func (p *Painter) Stroke(target *ebiten.Image, path *vector.Path, width float32, clr color.RGBA) {
	p.vs, p.is = path.AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width: width,
	})
	p.draw(target, clr)
}

func (p *Painter) draw(target *ebiten.Image, clr color.RGBA) {
	for i := range p.vs {
		p.vs[i].ColorR = float32(clr.R) / 255
		p.vs[i].ColorG = float32(clr.G) / 255
		p.vs[i].ColorB = float32(clr.B) / 255
		p.vs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(p.vs, p.is, p.img, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
