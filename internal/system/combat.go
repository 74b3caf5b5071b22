package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update ticks tower cooldowns and fires at the nearest enemy in range.
// Targets come from the snapshot taken before enemies moved this tick;
// enemies that died or escaped since then are skipped.
func (s *CombatSystem) Update(deltaTime float64, targets []TargetInfo) {
	valid := make([]TargetInfo, 0, len(targets))
	for _, t := range targets {
		if s.ecs.IsTargetableEnemy(t.ID) {
			valid = append(valid, t)
		}
	}

	for _, id := range s.ecs.TowerIDs() {
		combat, ok := s.ecs.Combats[id]
		if !ok {
			continue
		}
		idle := combat.Ready()
		combat.FireCooldown -= deltaTime
		if !combat.Ready() {
			continue
		}

		towerPos, ok := s.ecs.Positions[id]
		if !ok {
			combat.FireCooldown = 0
			continue
		}
		from := geom.V(towerPos.X, towerPos.Y)
		target, found := FindNearest(from, combat.Range, valid)
		if !found {
			combat.FireCooldown = 0
			continue
		}

		aim := AimPoint(combat.Aim, from, target, combat.ProjectileSpeed)
		projID := s.createProjectile(id, combat, from, target.ID, aim)
		// Перелёт кулдауна переносится на следующий выстрел; у простаивавшей
		// башни переноса нет.
		if idle {
			combat.FireCooldown = 0
		}
		combat.FireCooldown += combat.Interval()

		if turret, ok := s.ecs.Turrets[id]; ok {
			turret.TargetAngle = float32(aim.Sub(from).Angle())
			turret.TargetID = target.ID
		}

		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ProjectileFired,
			Data: event.ProjectileFiredData{
				ProjectileID: projID,
				TowerID:      id,
				TargetID:     target.ID,
				AimX:         aim.X,
				AimY:         aim.Y,
			},
		})
	}
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, combat *component.Combat, from geom.Vec, targetID types.EntityID, aim geom.Vec) types.EntityID {
	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{X: from.X, Y: from.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		SourceID:  towerID,
		TargetID:  targetID,
		AimX:      aim.X,
		AimY:      aim.Y,
		Mode:      combat.Mode,
		Speed:     combat.ProjectileSpeed,
		Damage:    combat.Damage,
		Radius:    config.ProjectileRadius,
		Direction: aim.Sub(from).Angle(),
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
	return projID
}
