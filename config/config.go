package config

import (
	"errors"
	"fmt"
	"os"

	"lanes/game"

	"gopkg.in/yaml.v3"
)

// Cadence holds the attack controller's starting thresholds and steps.
type Cadence struct {
	MinFast   int `yaml:"min_fast"`
	MinHeavy  int `yaml:"min_heavy"`
	FastFloor int `yaml:"fast_floor"`
	// HeavyFloor bounds MinHeavy from below
	HeavyFloor int `yaml:"heavy_floor"`
	FastStep   int `yaml:"fast_step"`
	HeavyStep  int `yaml:"heavy_step"`
	BulkCount  int `yaml:"bulk_count"`
	// Candidates are the mobile spawn locations compared by path risk
	Candidates []game.Coordinate `yaml:"candidates"`
}

// Layout is the fixed support structure built after reinforcement.
type Layout struct {
	Gate     game.Coordinate   `yaml:"gate"`
	Boosters []game.Coordinate `yaml:"boosters"`
	Towers   []game.Coordinate `yaml:"towers"`
}

type Config struct {
	DefenseSites []game.Coordinate `yaml:"defense_sites"`
	// ExpandFromTurn is the first turn on which the perimeter grows
	ExpandFromTurn int     `yaml:"expand_from_turn"`
	Cadence        Cadence `yaml:"cadence"`
	Layout         Layout  `yaml:"layout"`
}

func Default() Config {
	return Config{
		DefenseSites:   coords([][2]int{{3, 13}, {24, 13}, {10, 13}, {17, 13}}),
		ExpandFromTurn: 1,
		Cadence: Cadence{
			MinFast:    9,
			MinHeavy:   3,
			FastFloor:  9,
			HeavyFloor: 0,
			FastStep:   4,
			HeavyStep:  1,
			BulkCount:  game.BulkSpawn,
			Candidates: coords([][2]int{{14, 0}, {12, 1}}),
		},
		Layout: Layout{
			Gate: game.Coordinate{X: 17, Y: 13},
			Boosters: coords([][2]int{
				{13, 0}, {15, 1}, {14, 2}, {13, 2}, {11, 2}, {11, 3}, {12, 4}, {13, 4}, {14, 4}, {15, 4},
				{16, 4}, {18, 4}, {18, 5}, {17, 6}, {16, 6}, {15, 6}, {14, 6}, {13, 6}, {12, 6}, {11, 6},
				{10, 6}, {9, 6}, {7, 6}, {7, 7}, {8, 8}, {9, 8}, {10, 8}, {11, 8}, {12, 8}, {13, 8},
				{14, 8}, {15, 8}, {16, 8}, {17, 8}, {18, 8}, {19, 8}, {20, 8}, {22, 8}, {10, 5}, {15, 2},
				{16, 2}, {10, 3}, {18, 6}, {19, 6}, {20, 6}, {22, 9}, {21, 10}, {20, 10}, {19, 10}, {18, 10},
				{17, 10}, {16, 10}, {15, 10}, {14, 10}, {13, 10}, {12, 10}, {11, 10}, {10, 10}, {9, 10}, {8, 10},
				{7, 10}, {6, 10}, {5, 10}, {3, 10},
			}),
			Towers: coords([][2]int{
				{1, 13}, {2, 13}, {4, 12}, {5, 12}, {7, 12}, {8, 12}, {10, 12}, {11, 12}, {13, 12}, {14, 12},
				{16, 12}, {17, 12}, {19, 12}, {20, 12}, {22, 12}, {23, 12}, {25, 13}, {26, 13}, {0, 13}, {27, 13},
				{26, 12}, {1, 12},
			}),
		},
	}
}

func coords(pairs [][2]int) []game.Coordinate {
	out := make([]game.Coordinate, len(pairs))
	for i, p := range pairs {
		out[i] = game.Coordinate{X: p[0], Y: p[1]}
	}
	return out
}

// Load overlays the YAML file at path on the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if len(c.Cadence.Candidates) == 0 {
		errs = append(errs, errors.New("cadence.candidates must not be empty"))
	}
	if c.Cadence.MinFast < c.Cadence.FastFloor {
		errs = append(errs, fmt.Errorf("cadence.min_fast %d is below fast_floor %d", c.Cadence.MinFast, c.Cadence.FastFloor))
	}
	if c.Cadence.MinHeavy < c.Cadence.HeavyFloor {
		errs = append(errs, fmt.Errorf("cadence.min_heavy %d is below heavy_floor %d", c.Cadence.MinHeavy, c.Cadence.HeavyFloor))
	}
	if c.Cadence.BulkCount <= 0 {
		errs = append(errs, errors.New("cadence.bulk_count must be positive"))
	}
	for _, site := range c.DefenseSites {
		if !game.InHalf(site, game.Self) {
			errs = append(errs, fmt.Errorf("defense site %s is outside the arena half", site))
		}
	}
	return errors.Join(errs...)
}
