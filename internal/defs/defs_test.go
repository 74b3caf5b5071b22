package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultLibrary(t *testing.T) {
	lib := Default()

	want := map[TowerKind]struct {
		cost     int
		rng      float64
		fireRate float64
		damage   int
	}{
		KindBasic:  {100, 100, 2.0, 3},
		KindRapid:  {150, 100, 10.0, 5},
		KindSniper: {200, 150, 0.5, 10},
	}
	for kind, w := range want {
		def, ok := lib.Tower(kind)
		if !ok {
			t.Fatalf("missing tower kind %s", kind)
		}
		if def.Cost != w.cost || def.Range != w.rng || def.FireRate != w.fireRate || def.Damage != w.damage {
			t.Errorf("%s = %+v, want %+v", kind, def, w)
		}
	}

	kinds := lib.TowerKinds()
	if len(kinds) != 3 || kinds[0] != KindBasic || kinds[2] != KindSniper {
		t.Errorf("TowerKinds order = %v", kinds)
	}
	if len(lib.Path) != 15 {
		t.Errorf("default path has %d waypoints, want 15", len(lib.Path))
	}
	if got := lib.Waves.EnemyCount(1); got != 7 {
		t.Errorf("wave 1 count = %d, want 7", got)
	}
}

func TestParse_AcceptsJSON(t *testing.T) {
	data := `{
		"towers": [{"id": "basic", "cost": 10, "range": 50, "fire_rate": 1, "damage": 1,
		            "aim": "linear", "projectile": "homing", "projectile_speed": 100}],
		"enemies": [{"id": "e", "health": 5, "speed": 10, "reward": 1, "damage": 1}],
		"waves": {"base": 1, "per_wave": 1, "mix": [{"enemy": "e", "weight": 1}]},
		"path": [{"x": 0, "y": 0}, {"x": 10, "y": 0}]
	}`
	lib, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse JSON: %v", err)
	}
	if _, ok := lib.Tower(KindBasic); !ok {
		t.Error("basic tower not loaded")
	}
}

func TestParse_Rejects(t *testing.T) {
	base := `
towers:
  - {id: basic, cost: 10, range: 50, fire_rate: 1, damage: 1, aim: linear, projectile: homing, projectile_speed: 100}
enemies:
  - {id: e, health: 5, speed: 10}
waves: {base: 1, per_wave: 1, mix: [{enemy: e, weight: 1}]}
path: [{x: 0, y: 0}, {x: 10, y: 0}]
`
	if _, err := Parse([]byte(base)); err != nil {
		t.Fatalf("baseline should parse: %v", err)
	}

	tests := []struct {
		name    string
		old     string
		new     string
		wantErr string
	}{
		{"zero fire rate", "fire_rate: 1", "fire_rate: 0", "fire_rate"},
		{"bad aim", "aim: linear", "aim: psychic", "aim policy"},
		{"bad projectile", "projectile: homing", "projectile: boomerang", "projectile mode"},
		{"unknown field", "damage: 1,", "dmg: 1,", "field dmg not found"},
		{"unknown mix enemy", "enemy: e", "enemy: ghost", "unknown enemy"},
		{"short path", "path: [{x: 0, y: 0}, {x: 10, y: 0}]", "path: [{x: 0, y: 0}]", "at least 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(strings.Replace(base, tt.old, tt.new, 1)))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestWaveRule_EnemyCount(t *testing.T) {
	r := WaveRule{Base: 5, PerWave: 2, Max: 30}
	tests := map[int]int{1: 7, 2: 9, 10: 25, 12: 29, 13: 30, 50: 30}
	for wave, want := range tests {
		if got := r.EnemyCount(wave); got != want {
			t.Errorf("EnemyCount(%d) = %d, want %d", wave, got, want)
		}
	}
}

func TestWaveRule_MixForWave(t *testing.T) {
	r := Default().Waves
	if got := len(r.MixForWave(1)); got != 1 {
		t.Errorf("wave 1 mix size = %d, want 1", got)
	}
	if got := len(r.MixForWave(5)); got != 3 {
		t.Errorf("wave 5 mix size = %d, want 3", got)
	}
}

func TestHealthForWave(t *testing.T) {
	def := EnemyDefinition{Health: 10}
	if got := def.HealthForWave(1, 0.15); got != 10 {
		t.Errorf("wave 1 health = %d, want 10", got)
	}
	if got := def.HealthForWave(3, 0.15); got != 13 {
		t.Errorf("wave 3 health = %d, want 13", got)
	}
}

func TestVisualsRGBA(t *testing.T) {
	c := Visuals{Color: "#e6c800"}.RGBA()
	if c.R != 0xe6 || c.G != 0xc8 || c.B != 0 || c.A != 0xff {
		t.Errorf("RGBA = %+v", c)
	}
	if g := (Visuals{Color: "nope"}).RGBA(); g.R != 128 {
		t.Errorf("fallback = %+v", g)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "defs.yaml")
	if err := os.WriteFile(file, defaultData, 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(file)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	changed := strings.Replace(string(defaultData), "cost: 100", "cost: 120", 1)
	if err := os.WriteFile(file, []byte(changed), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case lib := <-w.Updates:
			def, _ := lib.Tower(KindBasic)
			if def.Cost == 120 {
				return
			}
		case <-w.Errors:
			// partial writes may fail to parse; the next event reloads again
		case <-deadline:
			t.Fatal("no reload with the new cost within 3s")
		}
	}
}
