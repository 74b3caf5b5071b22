package system

import (
	"testing"

	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/pkg/geom"
	"go-td-sim/pkg/pathing"
)

func TestMovement_SpawnDelay(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(t, ecs, straightPath(), 0, 10)
	enemy := ecs.Enemies[id]
	enemy.State = component.EnemySpawning
	enemy.SpawnDelay = 0.25
	ms := NewMovementSystem(ecs)

	ms.Update(0.1)
	if enemy.State != component.EnemySpawning || ecs.PathFollowers[id].Progress != 0 {
		t.Fatal("spawning enemy moved")
	}
	ms.Update(0.2)
	if enemy.State != component.EnemyActive {
		t.Fatalf("state = %v, want active", enemy.State)
	}
}

func TestMovement_AdvancesAlongPath(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(t, ecs, straightPath(), 0, 10)
	ecs.Velocities[id].Speed = 100

	NewMovementSystem(ecs).Update(1.0)

	if p := ecs.PathFollowers[id].Progress; !almostEqual(p, 0.1, 1e-9) {
		t.Errorf("progress = %v, want 0.1", p)
	}
	if pos := ecs.Positions[id]; !almostEqual(pos.X, 100, 1e-9) || pos.Y != 0 {
		t.Errorf("position = (%v, %v)", pos.X, pos.Y)
	}
}

func TestMovement_Escape(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(t, ecs, straightPath(), 0.99, 10)
	ecs.Velocities[id].Speed = 100

	NewMovementSystem(ecs).Update(1.0)

	if ecs.Enemies[id].State != component.EnemyEscaped {
		t.Fatalf("state = %v, want escaped", ecs.Enemies[id].State)
	}
	if ecs.PathFollowers[id].Progress != 1 {
		t.Errorf("progress = %v, want 1", ecs.PathFollowers[id].Progress)
	}
	if pos := ecs.Positions[id]; pos.X != 1000 {
		t.Errorf("position = (%v, %v), want path end", pos.X, pos.Y)
	}
}

func TestMovement_DegeneratePath(t *testing.T) {
	ecs := entity.NewECS()
	path := pathing.New([]geom.Vec{geom.V(5, 5)})
	id := addEnemy(t, ecs, path, 0, 10)

	NewMovementSystem(ecs).Update(1.0 / 60)
	if ecs.Enemies[id].State != component.EnemyEscaped {
		t.Errorf("state = %v, want escaped on a zero-length path", ecs.Enemies[id].State)
	}
}
