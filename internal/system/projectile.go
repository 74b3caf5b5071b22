// internal/system/projectile.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs    *entity.ECS
	bounds geom.Rect
}

func NewProjectileSystem(ecs *entity.ECS, bounds geom.Rect) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, bounds: bounds}
}

// Update moves every live projectile one step. A homing projectile whose
// target is no longer valid, or any projectile that leaves the playfield,
// is marked spent without dealing damage.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		if proj.Spent {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			proj.Spent = true
			continue
		}

		var dest geom.Vec
		switch proj.Mode {
		case defs.ModeHoming:
			if !s.ecs.IsTargetableEnemy(proj.TargetID) {
				proj.Spent = true
				continue
			}
			targetPos := s.ecs.Positions[proj.TargetID]
			dest = geom.V(targetPos.X, targetPos.Y)
		default:
			dest = geom.V(proj.AimX, proj.AimY)
		}

		here := geom.V(pos.X, pos.Y)
		toDest := dest.Sub(here)
		dist := toDest.Len()
		step := proj.Speed * deltaTime

		if dist > geom.Epsilon {
			proj.Direction = toDest.Angle()
		}
		if dist <= step {
			// Остаток пути меньше шага: снаряд долетает в этом тике.
			pos.X, pos.Y = dest.X, dest.Y
			proj.Arrived = true
		} else {
			next := here.Add(toDest.Scale(step / dist))
			pos.X, pos.Y = next.X, next.Y
		}

		if !s.bounds.Contains(geom.V(pos.X, pos.Y)) {
			proj.Spent = true
		}
	}
}

// ResolveCollisions applies damage for projectiles that reached their
// target. Each projectile deals damage at most once and is spent afterwards.
func (s *ProjectileSystem) ResolveCollisions() {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		if proj.Spent {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			proj.Spent = true
			continue
		}

		switch proj.Mode {
		case defs.ModeHoming:
			s.resolveHoming(proj, geom.V(pos.X, pos.Y))
		default:
			s.resolveBallistic(proj)
		}
	}
}

func (s *ProjectileSystem) resolveHoming(proj *component.Projectile, here geom.Vec) {
	if !s.ecs.IsTargetableEnemy(proj.TargetID) {
		proj.Spent = true
		return
	}
	targetPos := s.ecs.Positions[proj.TargetID]
	enemy := s.ecs.Enemies[proj.TargetID]
	if geom.Dist(here, geom.V(targetPos.X, targetPos.Y)) > proj.Radius+enemy.Radius {
		return
	}
	s.hit(proj, proj.TargetID)
}

// resolveBallistic only checks once the aim point is reached: the nearest
// targetable enemy overlapping the aim point takes the hit, otherwise the
// shot is a miss.
func (s *ProjectileSystem) resolveBallistic(proj *component.Projectile) {
	if !proj.Arrived {
		return
	}
	aim := geom.V(proj.AimX, proj.AimY)

	var victim types.EntityID
	best := 0.0
	for _, enemyID := range s.ecs.EnemyIDs() {
		if !s.ecs.IsTargetableEnemy(enemyID) {
			continue
		}
		enemyPos := s.ecs.Positions[enemyID]
		d := geom.Dist(aim, geom.V(enemyPos.X, enemyPos.Y))
		if d > proj.Radius+s.ecs.Enemies[enemyID].Radius {
			continue
		}
		if victim == types.NoEntity || d < best {
			victim, best = enemyID, d
		}
	}

	if victim == types.NoEntity {
		proj.Spent = true
		return
	}
	s.hit(proj, victim)
}

func (s *ProjectileSystem) hit(proj *component.Projectile, target types.EntityID) {
	ApplyDamage(s.ecs, target, proj.Damage)
	proj.Hit = true
	proj.Spent = true
}
