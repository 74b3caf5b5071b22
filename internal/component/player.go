// internal/component/player.go
package component

// PlayerStateComponent хранит экономику игрока.
type PlayerStateComponent struct {
	Gold     int
	Lives    int
	MaxLives int
	Kills    int
	Escapes  int
}
