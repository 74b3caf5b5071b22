// component/movement.go
package component

import "go-td-sim/pkg/pathing"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (пикселей в секунду)
type Velocity struct {
	Speed float64
}

// PathFollower — компонент движения по пути. Path общий для всех врагов и
// не принадлежит сущности.
type PathFollower struct {
	Path     *pathing.Path
	Progress float64 // 0 — первая точка пути, 1 — последняя
}
