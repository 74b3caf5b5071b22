package interfaces

import (
	"go-td-sim/internal/app"
	"go-td-sim/internal/defs"
)

// GameView — то, что UI читает из симуляции. Только чтение.
type GameView interface {
	Towers() []app.TowerView
	Enemies() []app.EnemyView
	Economy() app.EconomyView
	Definitions() *defs.Library
}
