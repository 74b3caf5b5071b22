// internal/defs/enemies.go
package defs

import (
	"fmt"
	"math"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Health     int     `yaml:"health"`
	Speed      float64 `yaml:"speed"`       // pixels per second
	Reward     int     `yaml:"reward"`      // золото за убийство
	Damage     int     `yaml:"damage"`      // сколько жизней снимает на выходе
	SpawnDelay float64 `yaml:"spawn_delay"` // seconds spent in Spawning
	Radius     float64 `yaml:"radius"`
	Visuals    Visuals `yaml:"visuals"`
}

// HealthForWave scales base health linearly with the wave number.
func (d EnemyDefinition) HealthForWave(wave int, growth float64) int {
	if wave < 1 {
		wave = 1
	}
	hp := int(math.Round(float64(d.Health) * (1 + growth*float64(wave-1))))
	if hp < 1 {
		hp = 1
	}
	return hp
}

func (d EnemyDefinition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("enemy without id")
	}
	if d.Health <= 0 {
		return fmt.Errorf("enemy %s: health must be positive", d.ID)
	}
	if d.Speed <= 0 {
		return fmt.Errorf("enemy %s: speed must be positive", d.ID)
	}
	if d.Reward < 0 || d.Damage < 0 || d.SpawnDelay < 0 || d.Radius < 0 {
		return fmt.Errorf("enemy %s: reward, damage, spawn_delay and radius must not be negative", d.ID)
	}
	return nil
}
