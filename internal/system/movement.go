// internal/system/movement.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// MovementSystem двигает врагов вдоль пути.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		switch enemy.State {
		case component.EnemySpawning:
			// Пока идёт задержка появления, враг стоит в начале пути.
			enemy.SpawnElapsed += deltaTime
			if enemy.SpawnElapsed >= enemy.SpawnDelay {
				enemy.State = component.EnemyActive
			}
		case component.EnemyActive:
			s.advance(id, enemy, deltaTime)
		}
	}
}

func (s *MovementSystem) advance(id types.EntityID, enemy *component.Enemy, deltaTime float64) {
	follower, hasPath := s.ecs.PathFollowers[id]
	vel, hasVel := s.ecs.Velocities[id]
	pos, hasPos := s.ecs.Positions[id]
	if !hasPath || !hasVel || !hasPos || follower.Path == nil {
		return
	}

	total := follower.Path.TotalLength()
	if total < geom.Epsilon {
		follower.Progress = 1
	} else {
		follower.Progress += vel.Speed * deltaTime / total
	}

	p := follower.Path.PointAt(follower.Progress)
	pos.X, pos.Y = p.X, p.Y
	if follower.Progress >= 1 {
		follower.Progress = 1
		enemy.State = component.EnemyEscaped
	}
}
