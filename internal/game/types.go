// internal/game/types.go
//
// Core type definitions for a Spelling Bee session.
// Defines:
//   - Outcome: result of submitting a guess.
//   - Game: mutable progress layered on a generated puzzle.

package game

import (
	"math/rand"
	"time"

	"github.com/robalobadob/spellingbee/internal/puzzle"
)

// Outcome is the result of one guess. Only OutcomeCorrect changes state.
// Possible values, in the order they are checked:
//   - "missing_center_letter": the guess lacks the center letter.
//   - "too_short":             the guess is below the minimum length.
//   - "already_guessed":       the word was found before.
//   - "correct":               the word is a remaining solution.
//   - "not_in_solution_set":   anything else.
type Outcome string

const (
	OutcomeMissingCenterLetter Outcome = "missing_center_letter"
	OutcomeTooShort            Outcome = "too_short"
	OutcomeAlreadyGuessed      Outcome = "already_guessed"
	OutcomeCorrect             Outcome = "correct"
	OutcomeNotInSolutionSet    Outcome = "not_in_solution_set"
)

var compliments = []string{
	"So cool!",
	"Nice choice!",
	"Keep it up!",
	"Way to go!",
	"Fun times!",
	"Yippee!",
}

// Message is the short notification text shown for an outcome. Correct
// guesses get a random compliment.
func (o Outcome) Message() string {
	switch o {
	case OutcomeCorrect:
		return compliments[rand.Intn(len(compliments))]
	case OutcomeTooShort:
		return "Too short"
	case OutcomeAlreadyGuessed:
		return "Already chosen"
	case OutcomeMissingCenterLetter:
		return "Missing center letter"
	default:
		return "Nope"
	}
}

// NoHint is the prefix count reported while the entry is too short for a hint.
const NoHint = -1

// Game holds the state of a single Spelling Bee session.
type Game struct {
	ID             string         // random id, stable across save/restore
	Puzzle         *puzzle.Puzzle // nil until a game has been started
	Difficulty     puzzle.Difficulty
	Remaining      []string  // unguessed solutions, alphabetical
	Guessed        []string  // found words in discovery order (lowercased)
	Entry          string    // current text entry buffer
	PrefixCount    int       // remaining words starting with Entry, or NoHint
	PossiblePoints int       // points for the whole solution set
	GuessedPoints  int       // points for Guessed
	Daily          string    // date key for daily puzzles, empty otherwise
	CreatedAt      time.Time // when the puzzle was generated
}
