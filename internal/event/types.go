// internal/event/types.go
package event

const (
	WaveStarted     EventType = "WaveStarted"     // Волна началась, Data: номер волны
	WaveEnded       EventType = "WaveEnded"       // Волна закончилась, Data: номер волны
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена, Data: TowerPlacedData
	ProjectileFired EventType = "ProjectileFired" // Выстрел, Data: ProjectileFiredData
	EnemyKilled     EventType = "EnemyKilled"     // Враг убит, Data: EnemyRemovedData
	EnemyEscaped    EventType = "EnemyEscaped"    // Враг дошёл до конца пути, Data: EnemyRemovedData
	GameOver        EventType = "GameOver"        // Жизни кончились
)
