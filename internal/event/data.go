package event

import (
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
)

// TowerPlacedData is the payload of TowerPlaced.
type TowerPlacedData struct {
	ID   types.EntityID
	Kind defs.TowerKind
	X, Y float64
	Cost int
}

// ProjectileFiredData is the payload of ProjectileFired.
type ProjectileFiredData struct {
	ProjectileID types.EntityID
	TowerID      types.EntityID
	TargetID     types.EntityID
	AimX, AimY   float64
}

// EnemyRemovedData is the payload of EnemyKilled and EnemyEscaped.
type EnemyRemovedData struct {
	ID     types.EntityID
	DefID  string
	Reward int // начислено золота (для EnemyKilled)
	Damage int // снято жизней (для EnemyEscaped)
}
