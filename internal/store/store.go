// internal/store/store.go
//
// Persistence interface for the Spelling Bee service.
// Two kinds of data are kept:
//   - Snapshots: opaque game blobs keyed by name ("currentGame").
//   - Daily results: best progress per date and difficulty for daily puzzles.
//
// Implementations: memory (this package, ephemeral) and SQLite.

package store

import (
	"context"
	"errors"
	"time"
)

// CurrentGame is the key under which the in-progress game is saved.
const CurrentGame = "currentGame"

// ErrNotFound is returned by Load for unknown keys.
var ErrNotFound = errors.New("store: not found")

// DailyResult summarizes progress on one daily puzzle.
type DailyResult struct {
	Date           string    `json:"date"` // YYYY-MM-DD
	Difficulty     string    `json:"difficulty"`
	GuessedPoints  int       `json:"guessedPoints"`
	PossiblePoints int       `json:"possiblePoints"`
	WordsFound     int       `json:"wordsFound"`
	Rank           string    `json:"rank"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Store persists snapshots and daily results.
type Store interface {
	// Save writes blob under key, replacing any previous value.
	Save(ctx context.Context, key string, blob []byte) error

	// Load returns the blob saved under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// RecordDaily upserts the result for (Date, Difficulty). A result with
	// fewer points than the stored one is ignored.
	RecordDaily(ctx context.Context, r DailyResult) error

	// DailyResults lists results newest date first, at most limit rows.
	DailyResults(ctx context.Context, limit int) ([]DailyResult, error)

	Close() error
}
