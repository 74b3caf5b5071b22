package entity

import (
	"slices"
	"testing"

	"go-td-sim/internal/component"
	"go-td-sim/internal/types"
)

func TestNewEntity_MonotonicAndNeverZero(t *testing.T) {
	ecs := NewECS()
	prev := types.NoEntity
	for i := 0; i < 100; i++ {
		id := ecs.NewEntity()
		if id == types.NoEntity || id <= prev {
			t.Fatalf("id %d after %d", id, prev)
		}
		prev = id
	}
}

func TestSortedIDs_CreationOrder(t *testing.T) {
	ecs := NewECS()
	var want []types.EntityID
	for i := 0; i < 50; i++ {
		id := ecs.NewEntity()
		ecs.Enemies[id] = &component.Enemy{}
		want = append(want, id)
	}
	for i := 0; i < 5; i++ {
		if got := ecs.EnemyIDs(); !slices.Equal(got, want) {
			t.Fatalf("EnemyIDs = %v, want %v", got, want)
		}
	}
}

func TestRemoveEntity_InvalidatesHandle(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 1, Y: 2}
	ecs.Enemies[id] = &component.Enemy{State: component.EnemyActive}
	ecs.Healths[id] = &component.Health{Value: 5, Max: 5}

	if !ecs.IsTargetableEnemy(id) {
		t.Fatal("active enemy should be targetable")
	}
	ecs.RemoveEntity(id)
	if ecs.IsTargetableEnemy(id) {
		t.Fatal("removed enemy is still targetable")
	}

	// Новая сущность не получает старый ID.
	if next := ecs.NewEntity(); next == id {
		t.Fatal("entity id was reused")
	}
}

func TestIsTargetableEnemy_States(t *testing.T) {
	ecs := NewECS()
	tests := []struct {
		state  component.EnemyState
		health int
		want   bool
	}{
		{component.EnemySpawning, 5, false},
		{component.EnemyActive, 5, true},
		{component.EnemyActive, 0, false},
		{component.EnemyEscaped, 5, false},
		{component.EnemyDead, 5, false},
	}
	for _, tt := range tests {
		id := ecs.NewEntity()
		ecs.Positions[id] = &component.Position{}
		ecs.Enemies[id] = &component.Enemy{State: tt.state}
		ecs.Healths[id] = &component.Health{Value: tt.health, Max: 5}
		if got := ecs.IsTargetableEnemy(id); got != tt.want {
			t.Errorf("state %s health %d: targetable = %v, want %v", tt.state, tt.health, got, tt.want)
		}
	}
}
