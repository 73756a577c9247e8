// internal/game/engine.go
//
// Core game engine for a single Spelling Bee session.
// Responsibilities:
//   - Start a session from a generated puzzle.
//   - Validate and apply guesses in a fixed, user-visible rule order.
//   - Score words and keep the points totals current.
//   - Maintain the entry buffer and its prefix hint.
//
// Notes:
//   - A Game is not safe for concurrent use; one owner mutates it at a time.
//   - Words are compared lowercase; the display layer may upper-case them.
package game

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/rank"
)

// ErrNotStarted is returned when guessing before any puzzle exists.
var ErrNotStarted = errors.New("no puzzle in progress")

// New starts a session on p with every solution still remaining.
func New(p *puzzle.Puzzle) *Game {
	remaining := append([]string(nil), p.Words...)
	sort.Strings(remaining)
	return &Game{
		ID:             uuid.NewString(),
		Puzzle:         p,
		Difficulty:     p.Difficulty,
		Remaining:      remaining,
		Guessed:        []string{},
		PrefixCount:    NoHint,
		PossiblePoints: TotalPoints(remaining, p.MinLength),
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
}

// Empty returns a session with no puzzle, used before the first new game
// and whenever saved state cannot be restored.
func Empty() *Game {
	return &Game{
		Difficulty:  puzzle.Easy,
		Remaining:   []string{},
		Guessed:     []string{},
		PrefixCount: NoHint,
	}
}

// Started reports whether a puzzle is loaded.
func (g *Game) Started() bool { return g.Puzzle != nil }

// Complete reports whether every solution has been found.
func (g *Game) Complete() bool { return g.Started() && len(g.Remaining) == 0 }

// Points scores one word: its length when longer than minLen, else 1.
func Points(word string, minLen int) int {
	n := len([]rune(word))
	if n > minLen {
		return n
	}
	return 1
}

// TotalPoints sums Points over words.
func TotalPoints(words []string, minLen int) int {
	total := 0
	for _, w := range words {
		total += Points(w, minLen)
	}
	return total
}

// Submit checks raw against the puzzle. Rules apply in order and the first
// match wins: missing center letter, too short, already guessed, correct,
// not in the solution set. Only a correct guess mutates the game.
func (g *Game) Submit(raw string) (Outcome, error) {
	if !g.Started() {
		return "", ErrNotStarted
	}
	word := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case !strings.ContainsRune(word, g.Puzzle.Center):
		return OutcomeMissingCenterLetter, nil
	case len([]rune(word)) < g.Puzzle.MinLength:
		return OutcomeTooShort, nil
	case indexOf(g.Guessed, word) >= 0:
		return OutcomeAlreadyGuessed, nil
	}

	i := indexOf(g.Remaining, word)
	if i < 0 {
		return OutcomeNotInSolutionSet, nil
	}
	g.Remaining = append(g.Remaining[:i], g.Remaining[i+1:]...)
	g.Guessed = append(g.Guessed, word)
	g.GuessedPoints = TotalPoints(g.Guessed, g.Puzzle.MinLength)
	return OutcomeCorrect, nil
}

// SubmitEntry submits the entry buffer and clears it.
func (g *Game) SubmitEntry() (Outcome, error) {
	out, err := g.Submit(g.Entry)
	if err != nil {
		return out, err
	}
	g.UpdateEntry("")
	return out, nil
}

// UpdateEntry replaces the entry buffer and recomputes the prefix hint:
// the number of remaining words starting with text, or NoHint while text is
// shorter than one less than the minimum length.
func (g *Game) UpdateEntry(text string) int {
	g.Entry = text
	g.PrefixCount = NoHint
	if !g.Started() || len([]rune(text)) < g.Puzzle.MinLength-1 {
		return g.PrefixCount
	}
	prefix := strings.ToLower(text)
	n := 0
	for _, w := range g.Remaining {
		if strings.HasPrefix(w, prefix) {
			n++
		}
	}
	g.PrefixCount = n
	return n
}

// Type appends letters to the entry buffer.
func (g *Game) Type(letters string) int { return g.UpdateEntry(g.Entry + letters) }

// Backspace drops the last letter of the entry buffer.
func (g *Game) Backspace() int {
	r := []rune(g.Entry)
	if len(r) == 0 {
		return g.UpdateEntry("")
	}
	return g.UpdateEntry(string(r[:len(r)-1]))
}

// Shuffle reorders the outer letters for display.
func (g *Game) Shuffle(rng *rand.Rand) {
	if !g.Started() {
		return
	}
	outer := g.Puzzle.Outer
	rng.Shuffle(len(outer), func(i, j int) { outer[i], outer[j] = outer[j], outer[i] })
}

// FoundByRecent lists found words, newest first.
func (g *Game) FoundByRecent() []string {
	out := make([]string, len(g.Guessed))
	for i, w := range g.Guessed {
		out[len(out)-1-i] = w
	}
	return out
}

// FoundByAlpha lists found words alphabetically.
func (g *Game) FoundByAlpha() []string {
	out := append([]string(nil), g.Guessed...)
	sort.Strings(out)
	return out
}

// Pangrams lists solutions that use all seven letters.
func (g *Game) Pangrams() []string {
	if !g.Started() {
		return nil
	}
	var out []string
	for _, w := range g.Puzzle.Words {
		if g.Puzzle.IsPangram(w) {
			out = append(out, w)
		}
	}
	return out
}

// Rank is the milestone reached so far. Kids games use the easier table.
func (g *Game) Rank() rank.Rank {
	return rank.For(g.GuessedPoints, g.PossiblePoints, g.Difficulty.IsEasyMode())
}

// Thresholds returns the point totals where each rank begins.
func (g *Game) Thresholds() []rank.Threshold {
	return rank.Thresholds(g.PossiblePoints, g.Difficulty.IsEasyMode())
}

// NextRank returns the following milestone and the points still needed.
func (g *Game) NextRank() (rank.Rank, int, bool) {
	return rank.Next(g.GuessedPoints, g.PossiblePoints, g.Difficulty.IsEasyMode())
}

func indexOf(list []string, w string) int {
	for i, x := range list {
		if x == w {
			return i
		}
	}
	return -1
}
