package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed games.yaml
var gamesYAML []byte

// catalog is the package-level game list, set by init from the embedded
// YAML. Invalid embedded content is a build defect, so init panics.
var (
	catalog []Game
	byID    map[string]*Game
)

func init() {
	games, err := Load(gamesYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded catalog invalid: %v", err))
	}
	install(games)
}

func install(games []Game) {
	catalog = games
	byID = make(map[string]*Game, len(games))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}
}

// Load parses and validates a catalog from YAML bytes.
func Load(data []byte) ([]Game, error) {
	var doc struct {
		Games []Game `yaml:"games"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validateGames(doc.Games); err != nil {
		return nil, err
	}
	return doc.Games, nil
}

// AllGames returns every game in catalog order.
func AllGames() []Game {
	out := make([]Game, len(catalog))
	copy(out, catalog)
	return out
}

// GetGame looks a game up by ID.
func GetGame(id string) (Game, error) {
	g, ok := byID[id]
	if !ok {
		return Game{}, fmt.Errorf("unknown game %q", id)
	}
	return *g, nil
}
