// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
)

// Снимки состояния для отрисовки и тестов. Все списки упорядочены по ID.

type EnemyView struct {
	ID             types.EntityID
	DefID          string
	X, Y           float64
	Radius         float64
	Health         int
	MaxHealth      int
	HealthFraction float64
	State          component.EnemyState
	Flashing       bool
	Color          color.RGBA
}

type TowerView struct {
	ID               types.EntityID
	Kind             defs.TowerKind
	X, Y             float64
	Range            float64
	CooldownFraction float64
	TurretAngle      float64
	Radius           float64
	Color            color.RGBA
}

type ProjectileView struct {
	ID        types.EntityID
	X, Y      float64
	Radius    float64
	Direction float64
	Mode      defs.ProjectileMode
}

type EconomyView struct {
	Gold        int
	Lives       int
	MaxLives    int
	Kills       int
	Wave        int
	WaveTotal   int
	EnemiesLeft int // ещё не выпущены + на поле
	Phase       component.GamePhase
	Countdown   float64
	GameOver    bool
}

func (g *Game) Enemies() []EnemyView {
	ids := g.ECS.EnemyIDs()
	views := make([]EnemyView, 0, len(ids))
	for _, id := range ids {
		enemy := g.ECS.Enemies[id]
		v := EnemyView{
			ID:     id,
			DefID:  enemy.DefID,
			Radius: enemy.Radius,
			State:  enemy.State,
		}
		if pos, ok := g.ECS.Positions[id]; ok {
			v.X, v.Y = pos.X, pos.Y
		}
		if health, ok := g.ECS.Healths[id]; ok {
			v.Health, v.MaxHealth = health.Value, health.Max
			v.HealthFraction = health.Fraction()
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			v.Color = r.Color
		}
		_, v.Flashing = g.ECS.DamageFlashes[id]
		views = append(views, v)
	}
	return views
}

func (g *Game) Towers() []TowerView {
	ids := g.ECS.TowerIDs()
	views := make([]TowerView, 0, len(ids))
	for _, id := range ids {
		tower := g.ECS.Towers[id]
		v := TowerView{ID: id, Kind: tower.DefID}
		if pos, ok := g.ECS.Positions[id]; ok {
			v.X, v.Y = pos.X, pos.Y
		}
		if combat, ok := g.ECS.Combats[id]; ok {
			v.Range = combat.Range
			v.CooldownFraction = combat.CooldownFraction()
		}
		if turret, ok := g.ECS.Turrets[id]; ok {
			v.TurretAngle = float64(turret.CurrentAngle)
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			v.Radius = float64(r.Radius)
			v.Color = r.Color
		}
		views = append(views, v)
	}
	return views
}

func (g *Game) Projectiles() []ProjectileView {
	ids := g.ECS.ProjectileIDs()
	views := make([]ProjectileView, 0, len(ids))
	for _, id := range ids {
		proj := g.ECS.Projectiles[id]
		v := ProjectileView{
			ID:        id,
			Radius:    proj.Radius,
			Direction: proj.Direction,
			Mode:      proj.Mode,
		}
		if pos, ok := g.ECS.Positions[id]; ok {
			v.X, v.Y = pos.X, pos.Y
		}
		views = append(views, v)
	}
	return views
}

func (g *Game) Economy() EconomyView {
	player := g.ECS.Player
	v := EconomyView{
		Gold:      player.Gold,
		Lives:     player.Lives,
		MaxLives:  player.MaxLives,
		Kills:     player.Kills,
		Phase:     g.StateSystem.Current(),
		Countdown: g.ECS.GameState.Countdown,
		GameOver:  g.StateSystem.IsGameOver(),
	}
	if wave := g.ECS.Wave; wave != nil {
		v.Wave = wave.Number
		v.WaveTotal = wave.Total
		v.EnemiesLeft = wave.EnemiesToSpawn + wave.Alive
	}
	return v
}
