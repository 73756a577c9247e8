package session

import (
	"strings"

	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/rank"
)

// View is a read-only copy of the current game for display.
type View struct {
	GameID         string            `json:"gameId,omitempty"`
	Started        bool              `json:"started"`
	OuterLetters   []string          `json:"outerLetters"`
	CenterLetter   string            `json:"centerLetter"`
	MinWordLength  int               `json:"minWordLength"`
	Difficulty     puzzle.Difficulty `json:"difficulty"`
	Daily          string            `json:"daily,omitempty"`
	EnteredWord    string            `json:"enteredWord"`
	PrefixCount    int               `json:"numWordsWithPrefix"`
	FoundRecent    []string          `json:"foundRecent"`
	FoundAlpha     []string          `json:"foundAlphabetical"`
	WordsFound     int               `json:"wordsFound"`
	WordsTotal     int               `json:"wordsTotal"`
	Pangrams       int               `json:"pangrams"`
	GuessedPoints  int               `json:"guessedPoints"`
	PossiblePoints int               `json:"possiblePoints"`
	Rank           rank.Rank         `json:"rank"`
	NextRank       *rank.Threshold   `json:"nextRank,omitempty"` // Points is what is still needed
	Thresholds     []rank.Threshold  `json:"thresholds"`
	Complete       bool              `json:"complete"`
}

func viewOf(g *game.Game) View {
	v := View{
		GameID:         g.ID,
		Started:        g.Started(),
		OuterLetters:   []string{},
		Difficulty:     g.Difficulty,
		Daily:          g.Daily,
		EnteredWord:    strings.ToUpper(g.Entry),
		PrefixCount:    g.PrefixCount,
		FoundRecent:    upperAll(g.FoundByRecent()),
		FoundAlpha:     upperAll(g.FoundByAlpha()),
		WordsFound:     len(g.Guessed),
		WordsTotal:     len(g.Guessed) + len(g.Remaining),
		GuessedPoints:  g.GuessedPoints,
		PossiblePoints: g.PossiblePoints,
		Rank:           g.Rank(),
		Thresholds:     g.Thresholds(),
		Complete:       g.Complete(),
	}
	if g.Started() {
		for _, c := range g.Puzzle.Outer {
			v.OuterLetters = append(v.OuterLetters, strings.ToUpper(string(c)))
		}
		v.CenterLetter = strings.ToUpper(string(g.Puzzle.Center))
		v.MinWordLength = g.Puzzle.MinLength
		v.Pangrams = len(g.Pangrams())
	}
	if next, need, ok := g.NextRank(); ok && g.Started() {
		v.NextRank = &rank.Threshold{Rank: next, Points: need}
	}
	return v
}

func upperAll(list []string) []string {
	out := make([]string, len(list))
	for i, w := range list {
		out[i] = strings.ToUpper(w)
	}
	return out
}
