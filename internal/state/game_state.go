// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"math"

	"go-td-sim/internal/app"
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/interfaces"
	"go-td-sim/internal/types"
	"go-td-sim/internal/ui"
	"go-td-sim/pkg/geom"
	"go-td-sim/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	_ State               = (*GameState)(nil)
	_ interfaces.GameView = (*app.Game)(nil)
)

// GameState — состояние игры
type GameState struct {
	sm      *StateMachine
	game    *app.Game
	opts    app.Options
	reloads <-chan *defs.Library
	colors  render.SceneColors

	indicator     *ui.StateIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	waveIndicator *ui.WaveIndicator
	health        *ui.PlayerHealthIndicator
	palette       *ui.TowerPalette
	infoPanel     *ui.InfoPanel
}

// NewGameState starts a game with opts. Definitions received on reloads are
// applied between frames.
func NewGameState(sm *StateMachine, opts app.Options, reloads <-chan *defs.Library) *GameState {
	gameLogic := app.NewGame(opts)
	eco := gameLogic.Economy()

	pauseButtonX := float32(config.ScreenWidth - config.IndicatorOffsetX - 90)
	indicatorX := float32(config.ScreenWidth - config.IndicatorOffsetX)
	speedButtonX := (pauseButtonX+indicatorX)/2 + 2

	return &GameState{
		sm:      sm,
		game:    gameLogic,
		opts:    opts,
		reloads: reloads,
		colors: render.SceneColors{
			Background:    config.BackgroundColor,
			Path:          config.PathColor,
			Projectile:    config.ProjectileColor,
			Range:         config.RangeColor,
			HealthBack:    config.EnemyHealthBack,
			HealthFront:   config.EnemyHealthFront,
			Stroke:        config.TextDarkColor,
			GhostValid:    config.GhostValidColor,
			GhostInvalid:  config.GhostInvalidColor,
			StrokeWidth:   config.StrokeWidth,
			PathWidth:     config.PathWidth,
			HealthBarSize: 3,
		},
		indicator:     ui.NewStateIndicator(indicatorX, config.IndicatorOffsetX, config.IndicatorRadius),
		speedButton:   ui.NewSpeedButton(speedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors, config.SpeedMultipliers),
		pauseButton:   ui.NewPauseButton(pauseButtonX, config.IndicatorOffsetX, config.IndicatorRadius, config.BuildStateColor, config.WaveStateColor),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 24, config.BuildStateColor),
		health:        ui.NewPlayerHealthIndicator(config.HUDTextX, config.HUDTextX, config.LivesIndicatorCols, eco.Gold, eco.Lives),
		palette:       ui.NewTowerPalette(config.HUDTextX, config.ScreenHeight-44, gameLogic.Library.TowerKinds()),
		infoPanel:     ui.NewInfoPanel(),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Exit() {}

// SetPaused показывает паузу на кнопке; вызывается PauseState.
func (g *GameState) SetPaused(paused bool) {
	g.pauseButton.SetPaused(paused)
}

func (g *GameState) Update(deltaTime float64) {
	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	if g.game.IsGameOver() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if inpututil.IsKeyJustPressed(key) {
			g.palette.Select(i)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.handleUIClick(x, y) {
			return
		}
		g.handleGameClick(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.infoPanel.Hide()
	}

	g.game.Update(deltaTime)

	eco := g.game.Economy()
	g.health.Update(deltaTime, eco.Gold, eco.Lives)
	g.indicator.Update(deltaTime)
	g.speedButton.Update(deltaTime)
	g.pauseButton.Update(deltaTime)
	g.infoPanel.Update(deltaTime)
}

func (g *GameState) applyReloads() {
	if g.reloads == nil {
		return
	}
	select {
	case lib, ok := <-g.reloads:
		if !ok {
			g.reloads = nil
			return
		}
		g.game.SetLibrary(lib)
		g.opts.Library = lib
		g.palette.Kinds = lib.TowerKinds()
		g.palette.Select(0)
	default:
	}
}

func (g *GameState) pause() {
	g.sm.Push(NewPauseState(g.sm, g))
}

func (g *GameState) restart() {
	g.sm.SetState(NewGameState(g.sm, g.opts, g.reloads))
}

// handleUIClick обрабатывает клики, которые попали в UI
func (g *GameState) handleUIClick(x, y int) bool {
	mx, my := float32(x), float32(y)
	switch {
	case g.speedButton.Contains(mx, my):
		g.game.SetSpeed(g.speedButton.Toggle())
		return true
	case g.pauseButton.Contains(mx, my):
		g.pause()
		return true
	}
	if slot := g.palette.SlotAt(x, y); slot >= 0 {
		g.palette.Select(slot)
		return true
	}
	return false
}

func (g *GameState) handleGameClick(x, y int) {
	if id, found := g.findEntityAt(float64(x), float64(y)); found {
		g.infoPanel.SetTarget(id)
		return
	}
	g.infoPanel.Hide()

	kind, ok := g.palette.Current()
	if !ok {
		return
	}
	g.game.PlaceTower(kind, float64(x), float64(y))
}

// findEntityAt ищет башню, а затем врага под курсором.
func (g *GameState) findEntityAt(x, y float64) (types.EntityID, bool) {
	for _, t := range g.game.Towers() {
		if math.Hypot(t.X-x, t.Y-y) <= config.TowerHalfSize {
			return t.ID, true
		}
	}
	for _, e := range g.game.Enemies() {
		if math.Hypot(e.X-x, e.Y-y) <= e.Radius+3 {
			return e.ID, true
		}
	}
	return types.NoEntity, false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(g.colors.Background)
	path := g.game.Path()
	render.DrawPath(screen, path.Points(), g.colors.PathWidth, g.colors.Path)
	if path.Len() > 0 {
		// Вход и выход пути.
		render.DrawCircle(screen, path.Start().X, path.Start().Y, g.colors.PathWidth*0.7, config.WaveStateColor, nil, 0)
		render.DrawCircle(screen, path.End().X, path.End().Y, g.colors.PathWidth*0.7, config.BuildStateColor, g.colors.Stroke, g.colors.StrokeWidth)
	}

	g.drawTowers(screen)
	g.drawEnemies(screen)
	g.drawProjectiles(screen)
	g.drawGhost(screen)
	g.drawHUD(screen)

	if g.game.IsGameOver() {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.GameOverOverlay, false)
		msg := fmt.Sprintf("GAME OVER - wave %d, %d kills. Press R to restart", g.game.Economy().Wave, g.game.Economy().Kills)
		bounds := text.BoundString(basicfont.Face7x13, msg)
		text.Draw(screen, msg, basicfont.Face7x13, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, color.White)
	}
}

func (g *GameState) drawTowers(screen *ebiten.Image) {
	for _, t := range g.game.Towers() {
		if t.ID == g.infoPanel.TargetEntity {
			render.DrawRange(screen, t.X, t.Y, t.Range, g.colors.Range)
		}
		fill := t.Color
		if t.CooldownFraction > 0 {
			fill = render.LightenColor(fill, 0.4*t.CooldownFraction)
		}
		render.DrawSquare(screen, t.X, t.Y, config.TowerHalfSize, fill, g.colors.Stroke, g.colors.StrokeWidth)
		render.DrawBarrel(screen, t.X, t.Y, t.TurretAngle, config.TowerHalfSize+4, 3, render.DarkenColor(t.Color))
	}
}

func (g *GameState) drawEnemies(screen *ebiten.Image) {
	for _, e := range g.game.Enemies() {
		if e.State == component.EnemySpawning {
			// Появляющийся враг полупрозрачный.
			render.DrawCircle(screen, e.X, e.Y, float32(e.Radius), render.WithAlpha(e.Color, 90), nil, 0)
			continue
		}
		fill := e.Color
		if e.Flashing {
			fill = render.LightenColor(fill, 0.7)
		}
		render.DrawCircle(screen, e.X, e.Y, float32(e.Radius), fill, g.colors.Stroke, 1)
		if e.HealthFraction < 1 {
			w := float32(e.Radius * 2.5)
			render.DrawHealthBar(screen, e.X, e.Y-e.Radius-6, w, g.colors.HealthBarSize, e.HealthFraction, g.colors.HealthBack, g.colors.HealthFront)
		}
	}
}

func (g *GameState) drawProjectiles(screen *ebiten.Image) {
	for _, p := range g.game.Projectiles() {
		render.DrawCircle(screen, p.X, p.Y, float32(p.Radius), g.colors.Projectile, nil, 0)
	}
}

// drawGhost показывает, где встанет башня и можно ли её туда поставить.
func (g *GameState) drawGhost(screen *ebiten.Image) {
	if g.game.IsGameOver() {
		return
	}
	kind, ok := g.palette.Current()
	if !ok {
		return
	}
	def, ok := g.game.Library.Tower(kind)
	if !ok {
		return
	}
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if !(geom.Rect{Max: geom.V(config.ScreenWidth, config.ScreenHeight)}).Contains(geom.V(x, y)) {
		return
	}

	clr := g.colors.GhostInvalid
	if g.game.CanPlaceTower(kind, x, y) {
		clr = g.colors.GhostValid
	}
	render.DrawRange(screen, x, y, def.Range, render.WithAlpha(clr, 40))
	render.DrawSquare(screen, x, y, config.TowerHalfSize, clr, nil, 0)
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	eco := g.game.Economy()

	g.health.Draw(screen, eco.MaxLives)
	g.waveIndicator.Draw(screen, eco.Wave)

	var stateColor color.RGBA
	progress := 0.0
	switch eco.Phase {
	case component.BuildState:
		stateColor = config.BuildStateColor
		if delay := g.game.Library.Waves.InterWaveDelay; eco.Wave == 1 {
			progress = eco.Countdown / math.Max(g.game.Library.Waves.FirstDelay, 1e-9)
		} else if delay > 0 {
			progress = eco.Countdown / delay
		}
	case component.WaveState:
		stateColor = config.WaveStateColor
	default:
		stateColor = config.GameOverOverlay
	}
	g.indicator.Draw(screen, stateColor, progress)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	g.palette.Draw(screen, g.game.Library, eco.Gold)
	g.infoPanel.Draw(screen, g.game)

	status := fmt.Sprintf("Enemies left: %d/%d   Speed: x%.0f", eco.EnemiesLeft, eco.WaveTotal, g.game.SpeedMultiplier)
	text.Draw(screen, status, basicfont.Face7x13, config.HUDTextX, int(config.HUDTextX+g.health.Height(eco.MaxLives))+config.HUDLineHeight, config.TextDarkColor)
}
