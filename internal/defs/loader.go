// internal/defs/loader.go
package defs

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"go-td-sim/pkg/geom"

	"gopkg.in/yaml.v3"
)

//go:embed data/defaults.yaml
var defaultData []byte

// Library is the full set of definitions a game is built from.
type Library struct {
	Towers  map[TowerKind]TowerDefinition
	Enemies map[string]EnemyDefinition
	Waves   WaveRule
	Path    []geom.Vec

	towerOrder []TowerKind
}

type libraryFile struct {
	Towers  []TowerDefinition `yaml:"towers"`
	Enemies []EnemyDefinition `yaml:"enemies"`
	Waves   WaveRule          `yaml:"waves"`
	Path    []geom.Vec        `yaml:"path"`
}

// Default returns the built-in definitions. They are validated by tests, so
// a failure here is a programming error.
func Default() *Library {
	lib, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("defs: embedded defaults are invalid: %v", err))
	}
	return lib
}

// Load reads a definitions file (YAML, or JSON which is a subset of it).
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d tower and %d enemy definitions from %s", len(lib.Towers), len(lib.Enemies), path)
	return lib, nil
}

// Parse decodes and validates definitions. Unknown fields are rejected so
// that typos in hand-edited files surface immediately.
func Parse(data []byte) (*Library, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file libraryFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := &Library{
		Towers:  make(map[TowerKind]TowerDefinition, len(file.Towers)),
		Enemies: make(map[string]EnemyDefinition, len(file.Enemies)),
		Waves:   file.Waves,
		Path:    file.Path,
	}
	for _, def := range file.Towers {
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.Towers[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tower id %q", def.ID)
		}
		lib.Towers[def.ID] = def
		lib.towerOrder = append(lib.towerOrder, def.ID)
	}
	for _, def := range file.Enemies {
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.Enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", def.ID)
		}
		lib.Enemies[def.ID] = def
	}
	if len(lib.Towers) == 0 {
		return nil, fmt.Errorf("no tower definitions")
	}
	if err := lib.Waves.validate(lib.Enemies); err != nil {
		return nil, err
	}
	if len(lib.Path) < 2 {
		return nil, fmt.Errorf("path needs at least 2 waypoints, got %d", len(lib.Path))
	}
	return lib, nil
}

// Tower looks up a tower definition by kind.
func (l *Library) Tower(kind TowerKind) (TowerDefinition, bool) {
	def, ok := l.Towers[kind]
	return def, ok
}

// Enemy looks up an enemy definition by id.
func (l *Library) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := l.Enemies[id]
	return def, ok
}

// TowerKinds returns the tower kinds in file order.
func (l *Library) TowerKinds() []TowerKind {
	return append([]TowerKind(nil), l.towerOrder...)
}
