// internal/component/projectile.go
package component

import (
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	SourceID types.EntityID
	// TargetID is a non-owning handle, looked up again every tick (homing).
	TargetID types.EntityID
	// AimX, AimY — точка перехвата, вычисленная при выстреле (ballistic).
	AimX, AimY float64
	Mode       defs.ProjectileMode
	Speed      float64
	Damage     int
	Radius     float64
	Direction  float64 // радианы, для отрисовки
	// Spent is set once the projectile hit, missed or lost its target; the
	// cleanup pass removes it. A spent projectile never deals damage.
	Spent bool
	Hit   bool
	// Arrived — снаряд долетел до точки прицела в этом тике (ballistic).
	Arrived bool
}
