// internal/system/utils.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
)

// ApplyDamage наносит урон врагу. Враг, у которого кончилось здоровье,
// сразу становится Dead и больше не может быть целью, а награду за него
// начисляет CleanupSystem. Возвращает false, если урон не нанесён.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || damage < 0 {
		return false
	}
	enemy, isEnemy := ecs.Enemies[entityID]
	if isEnemy && !enemy.Targetable() {
		return false
	}

	health.TakeDamage(damage)

	if isEnemy {
		// Добавляем или сбрасываем компонент "вспышки"
		ecs.DamageFlashes[entityID] = &component.DamageFlash{
			Timer:    config.DamageFlashDuration,
			Duration: config.DamageFlashDuration,
		}
		if health.IsDead() {
			enemy.State = component.EnemyDead
		}
	}
	return true
}
