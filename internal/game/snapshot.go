// internal/game/snapshot.go
//
// Persistence form of a Game.
// Responsibilities:
//   - Convert a Game to and from a flat JSON document.
//   - Validate saved documents before trusting them (board shape and words).
//   - Fall back to an empty game when saved state is missing or unreadable.
//
// Notes:
//   - Letters are stored uppercase; words are stored lowercase.
//   - Points are recomputed on restore, so the stored totals are informational.

package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/spellingbee/internal/puzzle"
)

// Snapshot is the saved form of a Game.
type Snapshot struct {
	ID                 string            `json:"id,omitempty"`
	OuterLetters       string            `json:"outerLetters"`
	CenterLetter       string            `json:"centerLetter"`
	MinWordLength      int               `json:"minWordLength"`
	RemainingWords     []string          `json:"remainingWords"`
	GuessedWords       []string          `json:"guessedWords"`
	PossiblePoints     int               `json:"possiblePoints"`
	GuessedPoints      int               `json:"guessedPoints"`
	EnteredWord        string            `json:"enteredWord"`
	NumWordsWithPrefix int               `json:"numWordsWithPrefix"`
	DifficultyLevel    puzzle.Difficulty `json:"difficultyLevel"`
	Daily              string            `json:"daily,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
}

// Snapshot captures g.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		ID:                 g.ID,
		RemainingWords:     append([]string{}, g.Remaining...),
		GuessedWords:       append([]string{}, g.Guessed...),
		PossiblePoints:     g.PossiblePoints,
		GuessedPoints:      g.GuessedPoints,
		EnteredWord:        g.Entry,
		NumWordsWithPrefix: g.PrefixCount,
		DifficultyLevel:    g.Difficulty,
		Daily:              g.Daily,
		CreatedAt:          g.CreatedAt,
	}
	if g.Started() {
		s.OuterLetters = strings.ToUpper(string(g.Puzzle.Outer))
		s.CenterLetter = strings.ToUpper(string(g.Puzzle.Center))
		s.MinWordLength = g.Puzzle.MinLength
	}
	return s
}

// Encode serializes g as JSON.
func (g *Game) Encode() ([]byte, error) {
	return json.Marshal(g.Snapshot())
}

// FromSnapshot rebuilds a Game. A snapshot without letters yields an
// unstarted game.
func FromSnapshot(s Snapshot) (*Game, error) {
	diff, err := puzzle.ParseDifficulty(string(s.DifficultyLevel))
	if err != nil {
		return nil, err
	}
	if s.OuterLetters == "" && s.CenterLetter == "" {
		g := Empty()
		g.Difficulty = diff
		return g, nil
	}

	outer := []rune(strings.ToLower(s.OuterLetters))
	if utf8.RuneCountInString(s.CenterLetter) != 1 {
		return nil, fmt.Errorf("snapshot: want 1 center letter, got %q", s.CenterLetter)
	}
	center, _ := utf8.DecodeRuneInString(strings.ToLower(s.CenterLetter))
	minLen := s.MinWordLength
	if minLen <= 0 {
		minLen = diff.MinWordLength()
	}

	remaining := lowerAll(s.RemainingWords)
	guessed := lowerAll(s.GuessedWords)
	seen := make(map[string]bool, len(remaining)+len(guessed))
	for _, w := range append(append([]string{}, remaining...), guessed...) {
		if seen[w] {
			return nil, fmt.Errorf("snapshot: word %q listed twice", w)
		}
		seen[w] = true
	}

	all := append(append([]string{}, remaining...), guessed...)
	sort.Strings(all)
	sort.Strings(remaining)
	p := &puzzle.Puzzle{
		Outer:      outer,
		Center:     center,
		MinLength:  minLen,
		Difficulty: diff,
		Words:      all,
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	prefix := s.NumWordsWithPrefix
	if prefix < NoHint {
		prefix = NoHint
	}
	id := s.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Game{
		ID:             id,
		Puzzle:         p,
		Difficulty:     diff,
		Remaining:      remaining,
		Guessed:        guessed,
		Entry:          s.EnteredWord,
		PrefixCount:    prefix,
		PossiblePoints: TotalPoints(all, minLen),
		GuessedPoints:  TotalPoints(guessed, minLen),
		Daily:          s.Daily,
		CreatedAt:      s.CreatedAt,
	}, nil
}

// Decode parses a JSON snapshot.
func Decode(blob []byte) (*Game, error) {
	var s Snapshot
	if err := json.Unmarshal(blob, &s); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return FromSnapshot(s)
}

// Restore decodes blob, returning an empty game when blob is empty or
// invalid. The error reports why saved state was discarded.
func Restore(blob []byte) (*Game, error) {
	if len(blob) == 0 {
		return Empty(), nil
	}
	g, err := Decode(blob)
	if err != nil {
		return Empty(), errors.Join(errors.New("saved game discarded"), err)
	}
	return g, nil
}

func lowerAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		out = append(out, strings.ToLower(w))
	}
	return out
}
