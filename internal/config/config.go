package config

import (
	"flag"

	"github.com/pkg/errors"

	"github.com/AhmedAllam0/pingpong/internal/game"
)

// Default values for configuration
const (
	DefaultPoints     = 7
	DefaultDifficulty = "normal"
	DefaultTheme      = "classic"
	DefaultSpawnRate  = "normal"
)

// Config holds the application configuration
type Config struct {
	TwoPlayer     bool
	Difficulty    game.Difficulty
	PointsToWin   int
	Theme         string
	SoundEnabled  bool
	ReducedMotion bool
	AdaptiveAI    bool
	PowerUps      bool
	SpawnRate     game.SpawnRate
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pingpong", flag.ContinueOnError)

	twoPlayer := fs.Bool("2p", false, "local two-player mode")
	difficulty := fs.String("difficulty", DefaultDifficulty, "AI difficulty (easy|normal|hard)")
	points := fs.Int("points", DefaultPoints, "points to win (>=1)")
	theme := fs.String("theme", DefaultTheme, "color theme")
	noSound := fs.Bool("no-sound", false, "disable audio feedback")
	reducedMotion := fs.Bool("reduced-motion", false, "tone down particles and screen shake")
	adaptiveAI := fs.Bool("adaptive-ai", false, "scale AI speed with the score gap")
	noPowerUps := fs.Bool("no-powerups", false, "disable power-up spawning")
	spawnRate := fs.String("powerup-rate", DefaultSpawnRate, "power-up spawn rate (low|normal|high)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parsing flags")
	}

	diff, ok := game.ParseDifficulty(*difficulty)
	if !ok {
		return nil, errors.Errorf("unknown difficulty %q, expected easy, normal or hard", *difficulty)
	}

	rate, ok := game.ParseSpawnRate(*spawnRate)
	if !ok {
		return nil, errors.Errorf("unknown power-up rate %q, expected low, normal or high", *spawnRate)
	}

	if _, ok := game.ThemeByName(*theme); !ok {
		return nil, errors.Errorf("unknown theme %q", *theme)
	}

	if *points < 1 {
		return nil, errors.Errorf("points must be at least 1, got %d", *points)
	}

	cfg := &Config{
		TwoPlayer:     *twoPlayer,
		Difficulty:    diff,
		PointsToWin:   *points,
		Theme:         *theme,
		SoundEnabled:  !*noSound,
		ReducedMotion: *reducedMotion,
		AdaptiveAI:    *adaptiveAI,
		PowerUps:      !*noPowerUps,
		SpawnRate:     rate,
	}

	return cfg, nil
}

// Mode maps the two-player flag onto the engine mode.
func (c *Config) Mode() game.Mode {
	if c.TwoPlayer {
		return game.ModeMulti
	}
	return game.ModeSingle
}
