// internal/ui/counter.go
package ui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const counterDuration = 0.4 // seconds

// Counter — число в HUD, которое плавно докручивается до нового значения.
type Counter struct {
	target  int
	current float32
	tween   *gween.Tween
}

func NewCounter(value int) *Counter {
	return &Counter{target: value, current: float32(value)}
}

// SetTarget starts a tween from the shown value to v. Repeated calls with
// the same value do not restart it.
func (c *Counter) SetTarget(v int) {
	if v == c.target {
		return
	}
	c.target = v
	c.tween = gween.New(c.current, float32(v), counterDuration, ease.OutCubic)
}

func (c *Counter) Update(dt float64) {
	if c.tween == nil {
		return
	}
	val, done := c.tween.Update(float32(dt))
	c.current = val
	if done {
		c.current = float32(c.target)
		c.tween = nil
	}
}

// Value returns the number to display.
func (c *Counter) Value() int {
	return int(math.Round(float64(c.current)))
}

// Animating reports whether the counter is still moving.
func (c *Counter) Animating() bool {
	return c.tween != nil
}

// pulse — короткое "подпрыгивание" элемента после клика.
type pulse struct {
	tween *gween.Tween
	scale float32
}

func (p *pulse) Start() {
	p.tween = gween.New(1.3, 1.0, 0.35, ease.OutBack)
	p.scale = 1.3
}

func (p *pulse) Update(dt float64) {
	if p.tween == nil {
		return
	}
	val, done := p.tween.Update(float32(dt))
	p.scale = val
	if done {
		p.tween = nil
		p.scale = 1
	}
}

func (p *pulse) Scale() float32 {
	if p.scale == 0 {
		return 1
	}
	return p.scale
}
