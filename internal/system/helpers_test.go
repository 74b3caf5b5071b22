package system

import (
	"math"
	"testing"

	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
	"go-td-sim/pkg/pathing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(eventType event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func listen(d *event.Dispatcher, eventTypes ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range eventTypes {
		d.Subscribe(t, r)
	}
	return r
}

// straightPath is 1000 px along the x axis.
func straightPath() *pathing.Path {
	return pathing.New([]geom.Vec{geom.V(0, 0), geom.V(1000, 0)})
}

func addEnemy(t *testing.T, ecs *entity.ECS, path *pathing.Path, progress float64, hp int) types.EntityID {
	t.Helper()
	id := ecs.NewEntity()
	p := path.PointAt(progress)
	ecs.Positions[id] = &component.Position{X: p.X, Y: p.Y}
	ecs.Velocities[id] = &component.Velocity{Speed: 60}
	ecs.PathFollowers[id] = &component.PathFollower{Path: path, Progress: progress}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Enemies[id] = &component.Enemy{
		DefID:  "normal",
		State:  component.EnemyActive,
		Reward: 10,
		Damage: 1,
		Radius: 5,
		Wave:   1,
	}
	return id
}

func addTower(ecs *entity.ECS, x, y float64, def defs.TowerDefinition) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{DefID: def.ID, Cost: def.Cost}
	ecs.Combats[id] = &component.Combat{
		FireRate:        def.FireRate,
		Range:           def.Range,
		Damage:          def.Damage,
		Aim:             def.Aim,
		Mode:            def.Projectile,
		ProjectileSpeed: def.ProjectileSpeed,
	}
	ecs.Turrets[id] = &component.TurretComponent{TurnSpeed: 8}
	return id
}

func addProjectile(ecs *entity.ECS, at geom.Vec, proj component.Projectile) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Projectiles[id] = &proj
	return id
}

func basicTower() defs.TowerDefinition {
	return defs.TowerDefinition{
		ID:              defs.KindBasic,
		Cost:            100,
		Range:           100,
		FireRate:        2,
		Damage:          3,
		Aim:             defs.AimLinear,
		Projectile:      defs.ModeHoming,
		ProjectileSpeed: 300,
	}
}

var testBounds = geom.Rect{Min: geom.V(-50, -50), Max: geom.V(1050, 750)}
