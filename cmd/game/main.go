// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-td-sim/internal/app"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run держит всю настройку, чтобы отложенные Close отработали до выхода.
func run() error {
	defsPath := flag.String("defs", "", "YAML file with tower, enemy and wave definitions (watched for changes)")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	skipMenu := flag.Bool("skip-menu", false, "start straight into the game")
	pprofAddr := flag.String("pprof", "", "address for the pprof server, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	opts := app.DefaultOptions()
	opts.Seed = *seed

	var reloads <-chan *defs.Library
	if *defsPath != "" {
		library, err := defs.Load(*defsPath)
		if err != nil {
			return fmt.Errorf("load definitions: %w", err)
		}
		opts.Library = library

		watcher, err := defs.NewWatcher(*defsPath)
		if err != nil {
			log.Printf("Hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			reloads = watcher.Updates
			go func() {
				for err := range watcher.Errors {
					log.Printf("Definitions not reloaded: %v", err)
				}
			}()
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	newGame := func() state.State {
		return state.NewGameState(sm, opts, reloads)
	}
	if *skipMenu {
		sm.SetState(newGame())
	} else {
		sm.SetState(state.NewMenuState(sm, newGame))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense")
	return ebiten.RunGame(game)
}
