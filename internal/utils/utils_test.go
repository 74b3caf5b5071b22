package utils

import (
	"math"
	"testing"

	"go-td-sim/internal/defs"
)

func TestChooseEnemy_Deterministic(t *testing.T) {
	mix := []defs.SpawnWeight{
		{EnemyID: "normal", Weight: 6},
		{EnemyID: "fast", Weight: 3},
		{EnemyID: "tough", Weight: 1},
	}
	a, b := NewPRNGService(42), NewPRNGService(42)
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		x, y := a.ChooseEnemy(mix), b.ChooseEnemy(mix)
		if x != y {
			t.Fatalf("same seed diverged at %d: %s vs %s", i, x, y)
		}
		counts[x]++
	}
	if counts["normal"] < counts["fast"] || counts["fast"] < counts["tough"] {
		t.Errorf("weights not respected: %v", counts)
	}
}

func TestChooseEnemy_Edges(t *testing.T) {
	s := NewPRNGService(1)
	if got := s.ChooseEnemy(nil); got != "" {
		t.Errorf("empty table gave %q", got)
	}
	if got := s.ChooseEnemy([]defs.SpawnWeight{{EnemyID: "a", Weight: 0}, {EnemyID: "b", Weight: 0}}); got != "a" {
		t.Errorf("zero weights gave %q, want first entry", got)
	}
}

func TestRotateTowards(t *testing.T) {
	got := RotateTowards(0, math.Pi/2, 0.1)
	if math.Abs(float64(got)-0.1) > 1e-6 {
		t.Errorf("RotateTowards step = %f, want 0.1", got)
	}
	// Через разрыв ±π идём по короткой дуге.
	got = RotateTowards(3.0, -3.0, 0.1)
	if math.Abs(float64(got)-3.1) > 1e-5 {
		t.Errorf("RotateTowards took the long way: %f", got)
	}
}
