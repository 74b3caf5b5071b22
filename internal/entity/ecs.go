// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-td-sim/internal/component"
	"go-td-sim/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	PathFollowers map[types.EntityID]*component.PathFollower
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	Turrets       map[types.EntityID]*component.TurretComponent
	Projectiles   map[types.EntityID]*component.Projectile
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Player        *component.PlayerStateComponent
	Wave          *component.Wave
	GameState     *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		PathFollowers: make(map[types.EntityID]*component.PathFollower),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		Turrets:       make(map[types.EntityID]*component.TurretComponent),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Player:        &component.PlayerStateComponent{},
		Wave:          nil,
		GameState: &component.GameState{
			Phase: component.BuildState,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.PathFollowers, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Turrets, id)
	delete(ecs.Projectiles, id)
	delete(ecs.DamageFlashes, id)
}

// Порядок обхода карт в Go случаен, а симуляция должна быть
// воспроизводимой, поэтому системы обходят сущности в порядке возрастания
// ID, то есть в порядке создания.

// EnemyIDs returns enemy IDs in creation order.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return SortedIDs(ecs.Enemies)
}

// TowerIDs returns tower IDs in creation order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return SortedIDs(ecs.Towers)
}

// ProjectileIDs returns projectile IDs in creation order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return SortedIDs(ecs.Projectiles)
}

// SortedIDs returns the keys of a component store in ascending order.
func SortedIDs[T any](store map[types.EntityID]T) []types.EntityID {
	return slices.Sorted(maps.Keys(store))
}

// IsTargetableEnemy reports whether id is a live, active enemy with a
// position. Stale handles simply fail the lookup.
func (ecs *ECS) IsTargetableEnemy(id types.EntityID) bool {
	enemy, ok := ecs.Enemies[id]
	if !ok || !enemy.Targetable() {
		return false
	}
	if health, ok := ecs.Healths[id]; ok && health.IsDead() {
		return false
	}
	_, hasPos := ecs.Positions[id]
	return hasPos
}
