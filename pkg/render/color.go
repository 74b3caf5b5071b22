// pkg/render/color.go
package render

import "image/color"

// SceneColors holds the colors used to draw the playfield.
type SceneColors struct {
	Background    color.RGBA
	Path          color.RGBA
	Projectile    color.RGBA
	Range         color.RGBA
	HealthBack    color.RGBA
	HealthFront   color.RGBA
	Stroke        color.RGBA
	GhostValid    color.RGBA
	GhostInvalid  color.RGBA
	StrokeWidth   float32
	PathWidth     float32
	HealthBarSize float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor mixes the color with white; t=0 keeps it, t=1 gives white.
func LightenColor(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*t)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// WithAlpha returns the color with a different alpha.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
