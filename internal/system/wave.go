// internal/system/wave.go
package system

import (
	"log"

	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/utils"
	"go-td-sim/pkg/pathing"
)

// WaveSystem ведёт отсчёт между волнами, выпускает врагов и переключает
// волны, когда текущая зачищена.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	library         *defs.Library
	path            *pathing.Path
	rng             *utils.PRNGService
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, library *defs.Library, path *pathing.Path, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		library:         library,
		path:            path,
		rng:             rng,
	}
}

// SetLibrary swaps the definitions used for the next spawns and waves.
// Enemies already on the field keep their stats.
func (s *WaveSystem) SetLibrary(library *defs.Library) {
	s.library = library
}

// NewWave builds the state of the given wave. SpawnTimer starts full, so the
// first enemy appears on the tick the wave begins.
func (s *WaveSystem) NewWave(number int) *component.Wave {
	rule := s.library.Waves
	total := rule.EnemyCount(number)
	return &component.Wave{
		Number:         number,
		Total:          total,
		EnemiesToSpawn: total,
		SpawnTimer:     rule.SpawnInterval,
		SpawnInterval:  rule.SpawnInterval,
	}
}

// Update advances the build countdown or the spawn timer.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	state := s.ecs.GameState
	if wave == nil {
		return
	}

	switch state.Phase {
	case component.BuildState:
		state.Countdown -= deltaTime
		if state.Countdown > 0 {
			return
		}
		state.Countdown = 0
		state.Phase = component.WaveState
		log.Printf("Wave %d started: %d enemies", wave.Number, wave.Total)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: wave.Number})
		s.spawnDue(wave)
	case component.WaveState:
		if wave.EnemiesToSpawn > 0 {
			wave.SpawnTimer += deltaTime
			s.spawnDue(wave)
		}
	}
}

func (s *WaveSystem) spawnDue(wave *component.Wave) {
	for wave.EnemiesToSpawn > 0 && wave.SpawnTimer >= wave.SpawnInterval {
		wave.SpawnTimer -= wave.SpawnInterval
		wave.EnemiesToSpawn--
		if s.spawnEnemy(wave) {
			wave.Alive++
		} else {
			wave.Total--
		}
	}
}

// Advance ends a cleared wave and schedules the next one after the
// inter-wave break. It reports whether the wave changed.
func (s *WaveSystem) Advance() bool {
	wave := s.ecs.Wave
	state := s.ecs.GameState
	if wave == nil || state.Phase != component.WaveState || !wave.Cleared() {
		return false
	}

	finished := wave.Number
	log.Printf("Wave %d cleared", finished)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: finished})

	s.ecs.Wave = s.NewWave(finished + 1)
	state.Phase = component.BuildState
	state.Countdown = s.library.Waves.InterWaveDelay
	return true
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) bool {
	enemyID := s.rng.ChooseEnemy(s.library.Waves.MixForWave(wave.Number))
	def, ok := s.library.Enemy(enemyID)
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %q", enemyID)
		return false
	}

	hp := def.HealthForWave(wave.Number, s.library.Waves.HealthGrowth)
	start := s.path.Start()

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.PathFollowers[id] = &component.PathFollower{Path: s.path}
	s.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.RGBA(),
		Radius:    float32(def.Radius),
		HasStroke: true,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:      def.ID,
		State:      component.EnemySpawning,
		SpawnDelay: def.SpawnDelay,
		Reward:     def.Reward,
		Damage:     def.Damage,
		Radius:     def.Radius,
		Wave:       wave.Number,
	}
	return true
}
