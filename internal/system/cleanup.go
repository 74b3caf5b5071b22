// internal/system/cleanup.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
)

// CleanupSystem убирает со сцены мёртвых и вышедших врагов и отработавшие
// снаряды. Сначала собирает ID, потом удаляет.
type CleanupSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCleanupSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CleanupSystem {
	return &CleanupSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CleanupSystem) Update() {
	var removed []types.EntityID

	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		var eventType event.EventType
		data := event.EnemyRemovedData{ID: id, DefID: enemy.DefID}

		switch enemy.State {
		case component.EnemyDead:
			eventType = event.EnemyKilled
			data.Reward = enemy.Reward
		case component.EnemyEscaped:
			eventType = event.EnemyEscaped
			data.Damage = enemy.Damage
		default:
			continue
		}

		removed = append(removed, id)
		if s.ecs.Wave != nil && enemy.Wave == s.ecs.Wave.Number && s.ecs.Wave.Alive > 0 {
			s.ecs.Wave.Alive--
		}
		s.eventDispatcher.Dispatch(event.Event{Type: eventType, Data: data})
	}

	for _, id := range s.ecs.ProjectileIDs() {
		if s.ecs.Projectiles[id].Spent {
			removed = append(removed, id)
		}
	}

	for _, id := range removed {
		s.ecs.RemoveEntity(id)
	}
}
