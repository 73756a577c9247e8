// internal/config/config.go
//
// Process configuration read from environment variables (after main has
// loaded any .env file).
//
// Variables:
//   ADDR                   listen address for the local UI transport
//   LOG_LEVEL              zerolog level name
//   STORE                  "sqlite" or "memory"
//   DB_PATH                SQLite file path
//   WORDS_DICT_FILE        standard dictionary file (empty = embedded list)
//   WORDS_KIDS_FILE        kids dictionary file (empty = embedded list)
//   CLIENT_ORIGIN          allowed CORS origin
//   GENERATE_TIMEOUT       upper bound on one puzzle generation
//   GENERATE_MAX_ATTEMPTS  boards tried before giving up
//   DAILY_SALT             secret mixed into daily puzzle seeds
//   RANGE_KIDS/EASY/MEDIUM/HARD  accepted solution counts, "min-max"
//
// Unset ranges follow the dictionary in use: the embedded lists get
// puzzle.DefaultPolicy, a configured dictionary file gets
// puzzle.FullDictionaryPolicy.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/spellingbee/internal/puzzle"
)

const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config is the full set of runtime settings.
type Config struct {
	Addr     string `env:"ADDR" envDefault:"127.0.0.1:5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Store  string `env:"STORE" envDefault:"sqlite"`
	DBPath string `env:"DB_PATH" envDefault:"./data/spellingbee.db"`

	WordsDictFile string `env:"WORDS_DICT_FILE"`
	WordsKidsFile string `env:"WORDS_KIDS_FILE"`

	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	GenerateTimeout     time.Duration `env:"GENERATE_TIMEOUT" envDefault:"30s"`
	GenerateMaxAttempts int           `env:"GENERATE_MAX_ATTEMPTS" envDefault:"20000"`
	DailySalt           string        `env:"DAILY_SALT" envDefault:"spelling-bee"`

	// Zero means unset.
	RangeKids   puzzle.Range `env:"RANGE_KIDS"`
	RangeEasy   puzzle.Range `env:"RANGE_EASY"`
	RangeMedium puzzle.Range `env:"RANGE_MEDIUM"`
	RangeHard   puzzle.Range `env:"RANGE_HARD"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("config: STORE must be %q or %q, got %q", StoreSQLite, StoreMemory, c.Store)
	}
	if c.Store == StoreSQLite && c.DBPath == "" {
		return fmt.Errorf("config: DB_PATH is required when STORE=%s", StoreSQLite)
	}
	if c.GenerateTimeout <= 0 {
		return fmt.Errorf("config: GENERATE_TIMEOUT must be positive, got %s", c.GenerateTimeout)
	}
	if c.GenerateMaxAttempts <= 0 {
		return fmt.Errorf("config: GENERATE_MAX_ATTEMPTS must be positive, got %d", c.GenerateMaxAttempts)
	}
	return nil
}

// Policy returns the per-difficulty solution count ranges. Kids ranges
// follow WORDS_KIDS_FILE and the other tiers follow WORDS_DICT_FILE.
func (c Config) Policy() puzzle.Policy {
	embedded, full := puzzle.DefaultPolicy(), puzzle.FullDictionaryPolicy()
	base := func(d puzzle.Difficulty, file string) puzzle.Range {
		if file != "" {
			return full[d]
		}
		return embedded[d]
	}
	set := map[puzzle.Difficulty]puzzle.Range{
		puzzle.Kids:   c.RangeKids,
		puzzle.Easy:   c.RangeEasy,
		puzzle.Medium: c.RangeMedium,
		puzzle.Hard:   c.RangeHard,
	}

	p := make(puzzle.Policy, len(set))
	for d, r := range set {
		file := c.WordsDictFile
		if d == puzzle.Kids {
			file = c.WordsKidsFile
		}
		if r == (puzzle.Range{}) {
			r = base(d, file)
		}
		p[d] = r
	}
	return p
}
