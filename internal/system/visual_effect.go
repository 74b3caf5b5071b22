// internal/system/visual_effect.go
package system

import (
	"go-td-sim/internal/entity"
	"go-td-sim/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами: вспышки урона и
// поворот турелей. На симуляцию не влияет.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.DamageFlashes) {
		flash := s.ecs.DamageFlashes[id]
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for _, id := range entity.SortedIDs(s.ecs.Turrets) {
		turret := s.ecs.Turrets[id]
		turret.CurrentAngle = utils.RotateTowards(turret.CurrentAngle, turret.TargetAngle, turret.TurnSpeed*float32(deltaTime))
	}
}
