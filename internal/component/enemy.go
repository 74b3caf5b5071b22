package component

// EnemyState — состояние врага в его жизненном цикле.
type EnemyState int

const (
	// EnemySpawning: ждёт окончания задержки появления, не двигается и не
	// может быть целью.
	EnemySpawning EnemyState = iota
	EnemyActive
	EnemyDead
	EnemyEscaped
)

func (s EnemyState) String() string {
	switch s {
	case EnemySpawning:
		return "spawning"
	case EnemyActive:
		return "active"
	case EnemyDead:
		return "dead"
	case EnemyEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID        string // ID из определений врагов
	State        EnemyState
	SpawnDelay   float64
	SpawnElapsed float64
	Reward       int     // золото за убийство
	Damage       int     // урон игроку при выходе
	Radius       float64 // радиус для попаданий
	Wave         int     // номер волны, которая выпустила врага
}

// Targetable reports whether towers and projectiles may interact with it.
func (e *Enemy) Targetable() bool {
	return e.State == EnemyActive
}
