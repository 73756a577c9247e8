// internal/puzzle/types.go
//
// Core type definitions for puzzle generation.
// Defines:
//   - Difficulty: the tier a player picks for a new game.
//   - Range/Policy: acceptable solution counts per tier.
//   - Puzzle: a generated board (letters + solution list).

package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Difficulty selects the dictionary, minimum word length and target
// solution count of a puzzle.
type Difficulty string

const (
	Kids   Difficulty = "kids"
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists every tier in display order.
var Difficulties = []Difficulty{Kids, Easy, Medium, Hard}

// ParseDifficulty accepts a tier name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Difficulties {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// IsEasyMode reports whether the tier uses the kids dictionary and rank table.
func (d Difficulty) IsEasyMode() bool { return d == Kids }

const (
	MinLengthKids     = 3
	MinLengthStandard = 4
)

// MinWordLength is the shortest valid word for the tier. Kids accept three
// letters; every other tier needs four.
func (d Difficulty) MinWordLength() int {
	if d == Kids {
		return MinLengthKids
	}
	return MinLengthStandard
}

// Range is an inclusive span of acceptable solution counts.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Contains(n int) bool { return n >= r.Min && n <= r.Max }

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Min, r.Max) }

// ParseRange reads "min-max".
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("range %q: want min-max", s)
	}
	lower, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	upper, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	if lower < 0 || upper < lower {
		return Range{}, fmt.Errorf("range %q: need 0 <= min <= max", s)
	}
	return Range{Min: lower, Max: upper}, nil
}

// UnmarshalText lets ranges be read straight from configuration.
func (r *Range) UnmarshalText(b []byte) error {
	parsed, err := ParseRange(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Policy maps each tier to its acceptable solution count.
type Policy map[Difficulty]Range

// DefaultPolicy returns the stock tier table. It is sized for the embedded
// word lists; FullDictionaryPolicy suits a complete dictionary.
func DefaultPolicy() Policy {
	return Policy{
		Kids:   {Min: 20, Max: 150},
		Easy:   {Min: 40, Max: 150},
		Medium: {Min: 25, Max: 60},
		Hard:   {Min: 10, Max: 30},
	}
}

// FullDictionaryPolicy is the tier table for a general-purpose dictionary
// of tens of thousands of words.
func FullDictionaryPolicy() Policy {
	return Policy{
		Kids:   {Min: 100, Max: 150},
		Easy:   {Min: 100, Max: 150},
		Medium: {Min: 50, Max: 100},
		Hard:   {Min: 20, Max: 50},
	}
}

// Puzzle is a generated board. Letters are lowercase.
type Puzzle struct {
	Outer      []rune
	Center     rune
	MinLength  int
	Difficulty Difficulty
	Words      []string
}

// Validate checks the board shape: six outer letters and a center, all
// distinct a-z, and every word allowed by the board.
func (p *Puzzle) Validate() error {
	if len(p.Outer) != 6 {
		return fmt.Errorf("puzzle: want 6 outer letters, got %q", string(p.Outer))
	}
	if p.MinLength <= 0 {
		return fmt.Errorf("puzzle: minimum length %d", p.MinLength)
	}
	seen := make(map[rune]bool, 7)
	for _, c := range p.Letters() {
		if c < 'a' || c > 'z' {
			return fmt.Errorf("puzzle: letter %q is not a-z", c)
		}
		if seen[c] {
			return fmt.Errorf("puzzle: letter %q repeated", c)
		}
		seen[c] = true
	}
	for _, w := range p.Words {
		if !p.Allows(w) {
			return fmt.Errorf("puzzle: word %q does not fit the board %s", w, p.Letters())
		}
	}
	return nil
}

// Letters returns the outer letters followed by the center letter.
func (p *Puzzle) Letters() string { return string(p.Outer) + string(p.Center) }

// Allows reports whether word obeys the board's rules: only board letters,
// at least one center letter, and the minimum length.
func (p *Puzzle) Allows(word string) bool {
	if len([]rune(word)) < p.MinLength || !strings.ContainsRune(word, p.Center) {
		return false
	}
	letters := p.Letters()
	for _, c := range word {
		if !strings.ContainsRune(letters, c) {
			return false
		}
	}
	return true
}

// IsPangram reports whether word uses every letter on the board.
func (p *Puzzle) IsPangram(word string) bool {
	for _, c := range p.Letters() {
		if !strings.ContainsRune(word, c) {
			return false
		}
	}
	return true
}
