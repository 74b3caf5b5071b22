// internal/system/targeting.go
package system

import (
	"math"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// TargetInfo — снимок врага на начало тика: по нему башни выбирают цель и
// считают упреждение, даже если враг уже сдвинулся в этом тике.
type TargetInfo struct {
	ID     types.EntityID
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
}

// CaptureTargets returns every targetable enemy in creation order.
func CaptureTargets(ecs *entity.ECS) []TargetInfo {
	ids := ecs.EnemyIDs()
	targets := make([]TargetInfo, 0, len(ids))
	for _, id := range ids {
		if !ecs.IsTargetableEnemy(id) {
			continue
		}
		pos := ecs.Positions[id]
		info := TargetInfo{
			ID:     id,
			Pos:    geom.V(pos.X, pos.Y),
			Radius: ecs.Enemies[id].Radius,
		}
		if follower, ok := ecs.PathFollowers[id]; ok {
			if vel, ok := ecs.Velocities[id]; ok {
				info.Vel = EnemyVelocity(follower, vel.Speed)
			}
		}
		targets = append(targets, info)
	}
	return targets
}

// EnemyVelocity approximates the instantaneous velocity by sampling the path
// tangent at the current progress and scaling it by speed.
func EnemyVelocity(follower *component.PathFollower, speed float64) geom.Vec {
	if follower == nil || follower.Path == nil {
		return geom.Vec{}
	}
	return follower.Path.Direction(follower.Progress, config.VelocitySampleEp).Scale(speed)
}

// FindNearest returns the target closest to from with distance strictly less
// than rng. On equal distances the earlier target wins.
func FindNearest(from geom.Vec, rng float64, targets []TargetInfo) (TargetInfo, bool) {
	var best TargetInfo
	found := false
	minDistance := rng
	for _, t := range targets {
		d := geom.Dist(from, t.Pos)
		if d < minDistance {
			minDistance = d
			best = t
			found = true
		}
	}
	return best, found
}

// LinearLead leads the target by the time a projectile needs to cover the
// current distance. One pass, no iteration.
func LinearLead(tower, enemyPos, enemyVel geom.Vec, projectileSpeed float64) geom.Vec {
	if projectileSpeed <= 0 {
		return enemyPos
	}
	timeToHit := geom.Dist(tower, enemyPos) / projectileSpeed
	return enemyPos.Add(enemyVel.Scale(timeToHit))
}

// ExactIntercept solves |p + v*t - tower| = s*t for the smallest positive t:
//
//	a*t² + b*t + c = 0, a = |v|² - s², b = 2(p-tower)·v, c = |p-tower|²
//
// ok is false when there is no usable root (negative discriminant, a≈0, or
// only non-positive roots); the caller then falls back to LinearLead.
func ExactIntercept(tower, enemyPos, enemyVel geom.Vec, projectileSpeed float64) (aim geom.Vec, t float64, ok bool) {
	rel := enemyPos.Sub(tower)
	a := enemyVel.LenSq() - projectileSpeed*projectileSpeed
	b := 2 * rel.Dot(enemyVel)
	c := rel.LenSq()

	if math.Abs(a) < interceptEpsilon {
		return geom.Vec{}, 0, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return geom.Vec{}, 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	t = math.Inf(1)
	for _, r := range []float64{t1, t2} {
		if r > 0 && r < t {
			t = r
		}
	}
	if math.IsInf(t, 1) {
		return geom.Vec{}, 0, false
	}
	return enemyPos.Add(enemyVel.Scale(t)), t, true
}

const interceptEpsilon = 1e-6

// AimPoint applies the tower's aim policy.
func AimPoint(policy defs.AimPolicy, tower geom.Vec, target TargetInfo, projectileSpeed float64) geom.Vec {
	switch policy {
	case defs.AimIntercept:
		if aim, _, ok := ExactIntercept(tower, target.Pos, target.Vel, projectileSpeed); ok {
			return aim
		}
	}
	return LinearLead(tower, target.Pos, target.Vel, projectileSpeed)
}
