package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Dorely/beastbound/internal/engine"
	"github.com/Dorely/beastbound/internal/game"
	"github.com/Dorely/beastbound/internal/typechart"
)

type speciesEntry struct {
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Power    int      `json:"power"`
	Mind     int      `json:"mind"`
	Defense  int      `json:"defense"`
	Spirit   int      `json:"spirit"`
	Agility  int      `json:"agility"`
	MaxVigor int      `json:"max_vigor"`
}

type moveEntry struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	DamageDice int    `json:"damage_dice"`
	Special    bool   `json:"special"`
}

type rawConfig struct {
	SpeciesList []speciesEntry `json:"species_list"`
	MoveList    []moveEntry    `json:"move_list"`
	Server      *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the ruleset catalogs and the server address to
// bind to.
type LoadedConfig struct {
	Species       []game.Species
	Moves         []engine.MoveSpec
	ServerAddress string
}

// LoadConfig reads the ruleset file at path. It requires the keys
// `species_list` and `move_list` (snake_case) and validates both
// catalogs against the type chart.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.SpeciesList) == 0 {
		return nil, fmt.Errorf("config file %s: species_list is empty (provide a 'species_list' array)", path)
	}
	if len(rc.MoveList) == 0 {
		return nil, fmt.Errorf("config file %s: move_list is empty (provide a 'move_list' array)", path)
	}

	species := make([]game.Species, 0, len(rc.SpeciesList))
	nameSet := make(map[string]struct{}, len(rc.SpeciesList))
	for _, e := range rc.SpeciesList {
		if e.Name == "" {
			return nil, fmt.Errorf("config file %s: species entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(e.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate species name '%s'", path, e.Name)
		}
		nameSet[ln] = struct{}{}
		if len(e.Types) == 0 || len(e.Types) > 2 {
			return nil, fmt.Errorf("config file %s: species '%s' must have one or two types", path, e.Name)
		}
		for _, t := range e.Types {
			if !typechart.Known(t) {
				return nil, fmt.Errorf("config file %s: species '%s' has unknown type '%s'", path, e.Name, t)
			}
		}
		if e.MaxVigor <= 0 {
			return nil, fmt.Errorf("config file %s: species '%s' needs max_vigor > 0", path, e.Name)
		}
		species = append(species, game.Species{
			Name:  e.Name,
			Types: e.Types,
			Stats: game.StatBlock{
				Power:   e.Power,
				Mind:    e.Mind,
				Defense: e.Defense,
				Spirit:  e.Spirit,
				Agility: e.Agility,
			},
			MaxVigor: e.MaxVigor,
		})
	}

	moves := make([]engine.MoveSpec, 0, len(rc.MoveList))
	moveSet := make(map[string]struct{}, len(rc.MoveList))
	for _, m := range rc.MoveList {
		if m.Name == "" {
			return nil, fmt.Errorf("config file %s: move entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(m.Name))
		if _, exists := moveSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate move name '%s'", path, m.Name)
		}
		moveSet[ln] = struct{}{}
		if m.DamageDice < 1 {
			return nil, fmt.Errorf("config file %s: move '%s' needs damage_dice >= 1", path, m.Name)
		}
		if !typechart.Known(m.Type) {
			return nil, fmt.Errorf("config file %s: move '%s' has unknown type '%s'", path, m.Name, m.Type)
		}
		moves = append(moves, engine.MoveSpec{
			Name:       m.Name,
			Type:       m.Type,
			DamageDice: m.DamageDice,
			Special:    m.Special,
		})
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{Species: species, Moves: moves, ServerAddress: addr}, nil
}
