// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// TowerKind is the tag that identifies a tower definition.
type TowerKind string

const (
	KindBasic  TowerKind = "basic"
	KindRapid  TowerKind = "rapid"
	KindSniper TowerKind = "sniper"
)

// AimPolicy selects how a tower computes the point it fires at.
type AimPolicy string

const (
	// AimLinear leads the target by distance/projectileSpeed in one pass.
	AimLinear AimPolicy = "linear"
	// AimIntercept solves the intercept quadratic and falls back to AimLinear.
	AimIntercept AimPolicy = "intercept"
)

// ProjectileMode selects how a projectile tracks its target.
type ProjectileMode string

const (
	// ModeHoming re-aims at the live target every tick.
	ModeHoming ProjectileMode = "homing"
	// ModeBallistic flies straight to the aim point fixed at fire time.
	ModeBallistic ProjectileMode = "ballistic"
)

// TowerDefinition holds all the static data for a specific kind of tower.
type TowerDefinition struct {
	ID              TowerKind      `yaml:"id"`
	Name            string         `yaml:"name"`
	Cost            int            `yaml:"cost"`
	Range           float64        `yaml:"range"`
	FireRate        float64        `yaml:"fire_rate"` // Shots per second
	Damage          int            `yaml:"damage"`
	Aim             AimPolicy      `yaml:"aim"`
	Projectile      ProjectileMode `yaml:"projectile"`
	ProjectileSpeed float64        `yaml:"projectile_speed"`
	Visuals         Visuals        `yaml:"visuals"`
}

func (d TowerDefinition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("tower without id")
	}
	if d.Cost < 0 {
		return fmt.Errorf("tower %s: negative cost %d", d.ID, d.Cost)
	}
	if d.Range <= 0 {
		return fmt.Errorf("tower %s: range must be positive", d.ID)
	}
	if d.FireRate <= 0 {
		return fmt.Errorf("tower %s: fire_rate must be positive", d.ID)
	}
	if d.ProjectileSpeed <= 0 {
		return fmt.Errorf("tower %s: projectile_speed must be positive", d.ID)
	}
	switch d.Aim {
	case AimLinear, AimIntercept:
	default:
		return fmt.Errorf("tower %s: unknown aim policy %q", d.ID, d.Aim)
	}
	switch d.Projectile {
	case ModeHoming, ModeBallistic:
	default:
		return fmt.Errorf("tower %s: unknown projectile mode %q", d.ID, d.Projectile)
	}
	return nil
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color  string  `yaml:"color"` // "#rrggbb" or "#rrggbbaa"
	Radius float64 `yaml:"radius"`
}

// RGBA parses the hex color; malformed values render as opaque grey.
func (v Visuals) RGBA() color.RGBA {
	fallback := color.RGBA{128, 128, 128, 255}
	s := strings.TrimPrefix(v.Color, "#")
	if len(s) != 6 && len(s) != 8 {
		return fallback
	}
	if len(s) == 6 {
		s += "ff"
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}
}
