// internal/system/player_system.go
package system

import (
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
)

// PlayerSystem ведёт экономику игрока: золото за убийства и потерю жизней
// за прорвавшихся врагов.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	ps := &PlayerSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.EnemyKilled, ps)
	eventDispatcher.Subscribe(event.EnemyEscaped, ps)
	return ps
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.EnemyRemovedData)
	if !ok {
		return
	}
	player := s.ecs.Player

	switch e.Type {
	case event.EnemyKilled:
		player.Gold += data.Reward
		player.Kills++
	case event.EnemyEscaped:
		player.Lives -= data.Damage
		if player.Lives < 0 {
			player.Lives = 0
		}
		player.Escapes++
	}
}

// Spend списывает золото, если его хватает.
func (s *PlayerSystem) Spend(cost int) bool {
	if cost < 0 || s.ecs.Player.Gold < cost {
		return false
	}
	s.ecs.Player.Gold -= cost
	return true
}
