// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 700

	// Simulation timing
	MaxDeltaTime     = 1.0 / 30.0 // cap for a single Tick
	FixedTimeStep    = 1.0 / 60.0
	MaxStepsPerFrame = 8

	// Economy
	StartingGold  = 500
	StartingLives = 20

	// Waves: count = min(WaveBaseEnemies + EnemiesIncrementPerWave*wave, MaxEnemiesPerWave)
	WaveBaseEnemies         = 5
	EnemiesIncrementPerWave = 2
	MaxEnemiesPerWave       = 30
	FirstWaveDelay          = 2.0 // seconds before wave 1
	InterWaveDelay          = 3.0 // seconds between waves
	SpawnInterval           = 0.8 // seconds between spawns inside a wave
	HealthGrowthPerWave     = 0.15

	// Enemies
	EnemySpeed       = 60.0 // pixels per second (1 px per frame at 60 FPS)
	EnemyHealth      = 10
	EnemyRadius      = 5.0
	EnemyReward      = 10
	EnemyDamage      = 1
	VelocitySampleEp = 1e-3 // progress step used to sample the path tangent

	// Towers
	TowerHalfSize   = 10.0
	MinTowerSpacing = 2 * TowerHalfSize // центры башен не ближе этого
	PathWidth       = 20.0
	PathClearance   = PathWidth/2 + TowerHalfSize

	ProjectileSpeed  = 300.0 // pixels per second
	ProjectileRadius = 3.0   // pixels

	TurretTurnSpeed     = 8.0  // радиан в секунду
	DamageFlashDuration = 0.15 // seconds

	// HUD
	IndicatorOffsetX   = 30
	IndicatorRadius    = 10.0
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0
	ClickCooldown      = 300 // ms
	HUDTextX           = 10
	HUDLineHeight      = 20
	LivesIndicatorCols = 10
)

var (
	BackgroundColor   = color.RGBA{235, 235, 235, 255}
	PathColor         = color.RGBA{200, 200, 200, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	EnemyColor        = color.RGBA{220, 40, 40, 255}
	EnemyHealthBack   = color.RGBA{60, 60, 60, 200}
	EnemyHealthFront  = color.RGBA{50, 205, 50, 255}
	ProjectileColor   = color.RGBA{230, 200, 0, 255}
	RangeColor        = color.RGBA{0, 0, 150, 80}
	GhostValidColor   = color.RGBA{50, 205, 50, 120}
	GhostInvalidColor = color.RGBA{220, 60, 60, 120}
	GameOverOverlay   = color.RGBA{255, 0, 0, 128}
	BuildStateColor   = color.RGBA{70, 130, 180, 220}
	WaveStateColor    = color.RGBA{220, 60, 60, 220}
	StrokeWidth       = float32(2.0)
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
