package system

import (
	"testing"

	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
)

func TestCombat_RangeScenario(t *testing.T) {
	tests := []struct {
		name      string
		towerY    float64
		wantShots int
	}{
		{"out of range", 150, 0},
		{"in range", 50, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			d := event.NewDispatcher()
			rec := listen(d, event.ProjectileFired)
			enemy := addEnemy(t, ecs, straightPath(), 0.5, 10)
			tower := addTower(ecs, 500, tt.towerY, basicTower())

			NewCombatSystem(ecs, d).Update(1.0/60, CaptureTargets(ecs))

			if got := len(ecs.Projectiles); got != tt.wantShots {
				t.Fatalf("projectiles = %d, want %d", got, tt.wantShots)
			}
			if rec.count(event.ProjectileFired) != tt.wantShots {
				t.Errorf("ProjectileFired events = %d", rec.count(event.ProjectileFired))
			}
			if tt.wantShots == 0 {
				return
			}
			for _, proj := range ecs.Projectiles {
				if proj.TargetID != enemy || proj.SourceID != tower {
					t.Errorf("projectile %+v", proj)
				}
			}
			if cd := ecs.Combats[tower].FireCooldown; !almostEqual(cd, 0.5, 1e-9) {
				t.Errorf("cooldown = %v, want 0.5", cd)
			}
			if ecs.Turrets[tower].TargetID != enemy {
				t.Error("turret is not tracking the target")
			}
		})
	}
}

func TestCombat_CooldownGatesFire(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	addEnemy(t, ecs, straightPath(), 0.5, 1000)
	tower := addTower(ecs, 500, 50, basicTower())
	combat := NewCombatSystem(ecs, d)

	combat.Update(0.1, CaptureTargets(ecs))
	for i := 0; i < 3; i++ {
		combat.Update(0.1, CaptureTargets(ecs))
	}
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("fired %d shots during the cooldown", len(ecs.Projectiles))
	}

	// Кулдаун не уходит в минус, даже при большом шаге.
	ecs.Combats[tower].FireCooldown = 0.05
	combat.Update(0.0, nil)
	combat.Update(1.0, nil)
	if cd := ecs.Combats[tower].FireCooldown; cd != 0 {
		t.Errorf("cooldown = %v, want 0", cd)
	}
	combat.Update(0, CaptureTargets(ecs))
	if len(ecs.Projectiles) != 2 {
		t.Errorf("tower did not fire when ready: %d projectiles", len(ecs.Projectiles))
	}
}

func TestCombat_SkipsTargetsInvalidatedAfterSnapshot(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	enemy := addEnemy(t, ecs, straightPath(), 0.5, 10)
	addTower(ecs, 500, 50, basicTower())

	targets := CaptureTargets(ecs)
	ecs.Enemies[enemy].State = component.EnemyEscaped

	NewCombatSystem(ecs, d).Update(1.0/60, targets)
	if len(ecs.Projectiles) != 0 {
		t.Error("tower fired at an escaped enemy")
	}
}

func TestCombat_InterceptPolicyLeadsTarget(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	addEnemy(t, ecs, straightPath(), 0.5, 10)
	def := basicTower()
	def.Aim = defs.AimIntercept
	def.Projectile = defs.ModeBallistic
	def.Range = 200
	addTower(ecs, 500, 100, def)

	NewCombatSystem(ecs, d).Update(1.0/60, CaptureTargets(ecs))
	if len(ecs.Projectiles) != 1 {
		t.Fatal("no shot")
	}
	for _, proj := range ecs.Projectiles {
		if proj.Mode != defs.ModeBallistic {
			t.Errorf("mode = %v", proj.Mode)
		}
		// Враг движется по +X, значит точка прицела впереди него.
		if proj.AimX <= 500 || !almostEqual(proj.AimY, 0, 1e-6) {
			t.Errorf("aim = (%v, %v), want ahead of (500, 0)", proj.AimX, proj.AimY)
		}
	}
}

func TestCombat_FireRateMatchesShotsPerSecond(t *testing.T) {
	tests := []struct {
		name      string
		fireRate  float64
		wantShots int
	}{
		{"basic", 2, 2},
		{"rapid", 10, 10},
		{"sniper", 0.5, 1},
		// Интервал не кратен шагу: 0, 9, 18, 26, 35, 43, 52.
		{"uneven interval", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			d := event.NewDispatcher()
			rec := listen(d, event.ProjectileFired)
			addEnemy(t, ecs, straightPath(), 0.5, 1_000_000)
			def := basicTower()
			def.FireRate = tt.fireRate
			addTower(ecs, 500, 50, def)
			combat := NewCombatSystem(ecs, d)

			for i := 0; i < 60; i++ {
				combat.Update(1.0/60, CaptureTargets(ecs))
			}
			if got := rec.count(event.ProjectileFired); got != tt.wantShots {
				t.Errorf("fire rate %v: %d shots in 1s, want %d", tt.fireRate, got, tt.wantShots)
			}
		})
	}
}
