// internal/defs/waves.go
package defs

import "fmt"

// SpawnWeight — одна запись таблицы состава волны: тип врага, его вес и
// волна, начиная с которой он может появиться.
type SpawnWeight struct {
	EnemyID string `yaml:"enemy"`
	Weight  int    `yaml:"weight"`
	MinWave int    `yaml:"min_wave"`
}

// WaveRule описывает, сколько врагов выпускает волна и с какими паузами.
type WaveRule struct {
	Base           int           `yaml:"base"`
	PerWave        int           `yaml:"per_wave"`
	Max            int           `yaml:"max"`
	SpawnInterval  float64       `yaml:"spawn_interval"`
	FirstDelay     float64       `yaml:"first_delay"`
	InterWaveDelay float64       `yaml:"inter_wave_delay"`
	HealthGrowth   float64       `yaml:"health_growth"`
	Mix            []SpawnWeight `yaml:"mix"`
}

// EnemyCount returns the number of enemies spawned in the given wave:
// Base + PerWave*wave, capped at Max when Max is positive.
func (r WaveRule) EnemyCount(wave int) int {
	n := r.Base + r.PerWave*wave
	if r.Max > 0 && n > r.Max {
		n = r.Max
	}
	if n < 0 {
		n = 0
	}
	return n
}

// MixForWave returns the spawn table entries unlocked at the given wave.
func (r WaveRule) MixForWave(wave int) []SpawnWeight {
	var out []SpawnWeight
	for _, e := range r.Mix {
		if wave >= e.MinWave && e.Weight > 0 {
			out = append(out, e)
		}
	}
	return out
}

func (r WaveRule) validate(enemies map[string]EnemyDefinition) error {
	if r.SpawnInterval < 0 || r.FirstDelay < 0 || r.InterWaveDelay < 0 {
		return fmt.Errorf("waves: delays must not be negative")
	}
	if len(r.Mix) == 0 {
		return fmt.Errorf("waves: empty mix")
	}
	for _, e := range r.Mix {
		if _, ok := enemies[e.EnemyID]; !ok {
			return fmt.Errorf("waves: mix references unknown enemy %q", e.EnemyID)
		}
	}
	return nil
}
