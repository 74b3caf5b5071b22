// internal/app/game.go
package app

import (
	"log"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/system"
	"go-td-sim/internal/utils"
	"go-td-sim/pkg/geom"
	"go-td-sim/pkg/pathing"
)

// Options задаёт всё, из чего строится партия. Начинайте с DefaultOptions и
// меняйте нужные поля.
type Options struct {
	Library       *defs.Library
	Path          []geom.Vec // если пусто, берётся путь из Library
	StartingGold  int
	StartingLives int
	// Seed for the spawn mix; 0 picks a time-based seed.
	Seed   int64
	Bounds geom.Rect
}

// DefaultOptions returns the standard game: built-in definitions, 500 gold,
// 20 lives and the full playfield.
func DefaultOptions() Options {
	return Options{
		Library:       defs.Default(),
		StartingGold:  config.StartingGold,
		StartingLives: config.StartingLives,
		Bounds:        geom.Rect{Max: geom.V(config.ScreenWidth, config.ScreenHeight)},
	}
}

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	Library         *defs.Library
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	CleanupSystem      *system.CleanupSystem
	PlayerSystem       *system.PlayerSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	SpeedMultiplier float64

	path        *pathing.Path
	bounds      geom.Rect
	gameTime    float64
	accumulator float64
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	if opts.Library == nil {
		opts.Library = defs.Default()
	}
	if opts.Bounds == (geom.Rect{}) {
		opts.Bounds = geom.Rect{Max: geom.V(config.ScreenWidth, config.ScreenHeight)}
	}
	points := opts.Path
	if len(points) == 0 {
		points = opts.Library.Path
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	path := pathing.New(points)

	g := &Game{
		ECS:                ecs,
		Library:            opts.Library,
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		WaveSystem:         system.NewWaveSystem(ecs, eventDispatcher, opts.Library, path, rng),
		MovementSystem:     system.NewMovementSystem(ecs),
		CombatSystem:       system.NewCombatSystem(ecs, eventDispatcher),
		ProjectileSystem:   system.NewProjectileSystem(ecs, opts.Bounds),
		CleanupSystem:      system.NewCleanupSystem(ecs, eventDispatcher),
		PlayerSystem:       system.NewPlayerSystem(ecs, eventDispatcher),
		StateSystem:        system.NewStateSystem(ecs, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		SpeedMultiplier:    1.0,
		path:               path,
		bounds:             opts.Bounds,
	}

	ecs.Player.Gold = opts.StartingGold
	ecs.Player.Lives = opts.StartingLives
	ecs.Player.MaxLives = opts.StartingLives
	ecs.Wave = g.WaveSystem.NewWave(1)
	ecs.GameState.Phase = component.BuildState
	ecs.GameState.Countdown = opts.Library.Waves.FirstDelay

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveEnded, listener)
	eventDispatcher.Subscribe(event.GameOver, listener)

	log.Printf("New game: %d gold, %d lives, path %.0f px, seed %d",
		opts.StartingGold, opts.StartingLives, path.TotalLength(), rng.Seed())
	return g
}

// Tick advances the simulation by dt seconds (clamped to MaxDeltaTime).
// After game over it does nothing.
func (g *Game) Tick(dt float64) {
	if g.StateSystem.IsGameOver() || dt <= 0 {
		return
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.WaveSystem.Update(dt)
	// Башни целятся по позициям врагов на начало тика.
	targets := system.CaptureTargets(g.ECS)
	g.MovementSystem.Update(dt)
	g.CombatSystem.Update(dt, targets)
	g.ProjectileSystem.Update(dt)
	g.ProjectileSystem.ResolveCollisions()
	g.CleanupSystem.Update()
	g.WaveSystem.Advance()
	g.StateSystem.Update()
	g.VisualEffectSystem.Update(dt)
}

// Update feeds real elapsed time, scaled by the speed multiplier, into fixed
// FixedTimeStep ticks. At most MaxStepsPerFrame ticks run per call; the rest
// of a long stall is dropped. Returns the number of ticks run.
func (g *Game) Update(elapsed float64) int {
	if elapsed <= 0 {
		return 0
	}
	g.accumulator += elapsed * g.SpeedMultiplier

	steps := 0
	for g.accumulator >= config.FixedTimeStep && steps < config.MaxStepsPerFrame {
		g.Tick(config.FixedTimeStep)
		g.accumulator -= config.FixedTimeStep
		steps++
	}
	if steps == config.MaxStepsPerFrame {
		g.accumulator = 0
	}
	return steps
}

// SetSpeed sets the game speed multiplier. Non-positive values are ignored.
func (g *Game) SetSpeed(multiplier float64) {
	if multiplier <= 0 {
		return
	}
	g.SpeedMultiplier = multiplier
}

// SetLibrary replaces the definitions used for new towers, spawns and waves.
// Towers and enemies already on the field keep their stats, and the path of
// a running game never changes.
func (g *Game) SetLibrary(library *defs.Library) {
	if library == nil {
		return
	}
	g.Library = library
	g.WaveSystem.SetLibrary(library)
	log.Printf("Definitions reloaded: %d towers, %d enemies", len(library.Towers), len(library.Enemies))
}

// Path returns the path enemies follow.
func (g *Game) Path() *pathing.Path {
	return g.path
}

// Definitions returns the definitions currently in use.
func (g *Game) Definitions() *defs.Library {
	return g.Library
}

// Events returns the dispatcher hosts can subscribe to.
func (g *Game) Events() *event.Dispatcher {
	return g.EventDispatcher
}

// GameTime returns the simulated time in seconds.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

func (g *Game) IsGameOver() bool {
	return g.StateSystem.IsGameOver()
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	player := l.game.ECS.Player
	switch e.Type {
	case event.WaveEnded:
		log.Printf("Wave %v done: gold %d, lives %d/%d, kills %d", e.Data, player.Gold, player.Lives, player.MaxLives, player.Kills)
	case event.GameOver:
		// Снаряды в полёте больше ничего не сделают, убираем их с поля.
		for _, id := range l.game.ECS.ProjectileIDs() {
			l.game.ECS.RemoveEntity(id)
		}
	}
}
