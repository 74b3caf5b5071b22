// internal/component/wave.go
package component

// Wave — компонент для волны врагов
type Wave struct {
	Number         int     // Номер волны
	Total          int     // Сколько врагов в волне всего
	EnemiesToSpawn int     // Сколько врагов осталось спавнить
	SpawnTimer     float64 // Таймер спавна
	SpawnInterval  float64 // Интервал между спавнами (в секундах)
	Alive          int     // Сколько врагов этой волны ещё на поле
}

// SpawningDone reports whether every enemy of the wave has been created.
func (w *Wave) SpawningDone() bool {
	return w.EnemiesToSpawn <= 0
}

// Cleared reports whether the wave is finished: all spawned, none left.
func (w *Wave) Cleared() bool {
	return w.SpawningDone() && w.Alive <= 0
}
