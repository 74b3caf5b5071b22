// internal/app/tower_management.go
package app

import (
	"errors"
	"log"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// Причины, по которым башню нельзя поставить.
var (
	ErrGameOver        = errors.New("game is over")
	ErrUnknownTower    = errors.New("unknown tower kind")
	ErrNotEnoughGold   = errors.New("not enough gold")
	ErrOutOfBounds     = errors.New("outside the playfield")
	ErrTooCloseToPath  = errors.New("too close to the path")
	ErrTooCloseToTower = errors.New("too close to another tower")
)

// PlaceTower attempts to place a tower of the given kind centered at (x, y).
// An invalid placement is a no-op that returns false.
func (g *Game) PlaceTower(kind defs.TowerKind, x, y float64) bool {
	if err := g.PlacementError(kind, x, y); err != nil {
		if errors.Is(err, ErrUnknownTower) {
			log.Printf("PlaceTower: %v %q", err, kind)
		}
		return false
	}

	def, _ := g.Library.Tower(kind)
	if !g.PlayerSystem.Spend(def.Cost) {
		return false
	}
	id := g.createTowerEntity(def, x, y)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerPlacedData{ID: id, Kind: kind, X: x, Y: y, Cost: def.Cost},
	})
	return true
}

// CanPlaceTower reports whether PlaceTower would succeed. It has no side
// effects, so hosts can call it every frame for the placement preview.
func (g *Game) CanPlaceTower(kind defs.TowerKind, x, y float64) bool {
	return g.PlacementError(kind, x, y) == nil
}

// PlacementError returns why a tower cannot be placed, or nil.
func (g *Game) PlacementError(kind defs.TowerKind, x, y float64) error {
	if g.StateSystem.IsGameOver() {
		return ErrGameOver
	}
	def, ok := g.Library.Tower(kind)
	if !ok {
		return ErrUnknownTower
	}
	if g.ECS.Player.Gold < def.Cost {
		return ErrNotEnoughGold
	}

	center := geom.V(x, y)
	half := geom.V(config.TowerHalfSize, config.TowerHalfSize)
	inner := geom.Rect{Min: g.bounds.Min.Add(half), Max: g.bounds.Max.Sub(half)}
	if !inner.Contains(center) {
		return ErrOutOfBounds
	}
	if g.path.DistanceTo(center) < config.PathClearance {
		return ErrTooCloseToPath
	}
	for _, id := range g.ECS.TowerIDs() {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		if geom.Dist(center, geom.V(pos.X, pos.Y)) < config.MinTowerSpacing {
			return ErrTooCloseToTower
		}
	}
	return nil
}

func (g *Game) createTowerEntity(def defs.TowerDefinition, x, y float64) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{DefID: def.ID, Cost: def.Cost}
	g.ECS.Combats[id] = &component.Combat{
		FireRate:        def.FireRate,
		Range:           def.Range,
		Damage:          def.Damage,
		Aim:             def.Aim,
		Mode:            def.Projectile,
		ProjectileSpeed: def.ProjectileSpeed,
	}
	g.ECS.Turrets[id] = &component.TurretComponent{
		CurrentAngle: 0,
		TargetAngle:  0,
		TurnSpeed:    config.TurretTurnSpeed,
	}
	radius := def.Visuals.Radius
	if radius <= 0 {
		radius = config.TowerHalfSize
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.RGBA(),
		Radius:    float32(radius),
		HasStroke: true,
	}
	return id
}
