// internal/puzzle/generator.go
//
// Board generation.
// Responsibilities:
//   - Draw candidate letter sets (2 vowels + 5 consonants, one of them the center).
//   - Enumerate each candidate's solutions with a constrained lexicon search.
//   - Resample until the solution count lands in the tier's range, up to MaxAttempts.
//   - Provide fresh seeds for non-daily games (NewSeed).
//
// Notes:
//   - All randomness comes from a *rand.Rand seeded by the caller, so a seed
//     reproduces a board (daily puzzles rely on this).
//   - GenerateAsync runs the same work on a goroutine and reports once.

package puzzle

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/internal/lexicon"
)

var (
	// ErrNoPuzzle means no sampled board hit the tier's range within MaxAttempts.
	ErrNoPuzzle = errors.New("could not generate a puzzle for this difficulty")
	// ErrEmptyLexicon means the tier's dictionary has no words.
	ErrEmptyLexicon = errors.New("dictionary is empty")
)

// DefaultMaxAttempts caps resampling when the generator is built without one.
const DefaultMaxAttempts = 20000

var (
	vowels     = []rune("aeiou")
	consonants = []rune("bcdfghjklmnpqrstvwxyz")
)

// NewSeed returns a random seed for a one-off board.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("puzzle seed: %w", err)
	}
	return int64(binary.BigEndian.Uint64(b[:]) >> 1), nil
}

// Source supplies the dictionary for a tier.
type Source interface {
	Lexicon(d Difficulty) *lexicon.Lexicon
}

// SourceFunc adapts a function to Source.
type SourceFunc func(d Difficulty) *lexicon.Lexicon

func (f SourceFunc) Lexicon(d Difficulty) *lexicon.Lexicon { return f(d) }

// Stats captures the cost of one Generate call.
type Stats struct {
	Attempts int
	TooFew   int // boards rejected below the range
	TooMany  int // boards rejected above the range
	Nodes    int
	Duration time.Duration
}

// Result is delivered by GenerateAsync.
type Result struct {
	Puzzle *Puzzle
	Stats  Stats
	Err    error
}

// Generator builds puzzles from a dictionary source and a tier policy.
type Generator struct {
	Source      Source
	Policy      Policy
	MaxAttempts int
}

// NewGenerator wires a generator. A nil policy means DefaultPolicy and a
// non-positive cap means DefaultMaxAttempts.
func NewGenerator(src Source, policy Policy, maxAttempts int) *Generator {
	if policy == nil {
		policy = DefaultPolicy()
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{Source: src, Policy: policy, MaxAttempts: maxAttempts}
}

// Generate samples boards for difficulty d until one has an acceptable
// number of solutions. It fails with ErrNoPuzzle after MaxAttempts
// samples, ErrEmptyLexicon when the dictionary is empty, or ctx.Err().
func (g *Generator) Generate(ctx context.Context, seed int64, d Difficulty) (*Puzzle, Stats, error) {
	start := time.Now()
	var st Stats

	want, ok := g.Policy[d]
	if !ok {
		return nil, st, fmt.Errorf("no policy for difficulty %q", d)
	}
	var lex *lexicon.Lexicon
	if g.Source != nil {
		lex = g.Source.Lexicon(d)
	}
	if lex == nil || lex.Len() == 0 {
		return nil, st, fmt.Errorf("%s: %w", d, ErrEmptyLexicon)
	}

	rng := rand.New(rand.NewSource(seed))
	minLen := d.MinWordLength()

	for st.Attempts < g.MaxAttempts {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return nil, st, err
		}
		st.Attempts++

		outer, center := drawLetters(rng)
		res := lex.Search(lexicon.Query{
			Letters:   string(outer) + string(center),
			Required:  center,
			MinLength: minLen,
			Limit:     want.Max + 1,
		})
		st.Nodes += res.Nodes

		switch n := len(res.Words); {
		case n < want.Min:
			st.TooFew++
			continue
		case n > want.Max:
			st.TooMany++
			continue
		}

		words := res.Words
		sort.Strings(words)
		st.Duration = time.Since(start)
		log.Info().
			Str("difficulty", string(d)).
			Str("letters", string(outer)).
			Str("center", string(center)).
			Int("words", len(words)).
			Int("attempts", st.Attempts).
			Int("too_few", st.TooFew).
			Int("too_many", st.TooMany).
			Dur("took", st.Duration).
			Msg("board accepted")
		return &Puzzle{
			Outer:      outer,
			Center:     center,
			MinLength:  minLen,
			Difficulty: d,
			Words:      words,
		}, st, nil
	}

	st.Duration = time.Since(start)
	log.Debug().
		Str("difficulty", string(d)).
		Int("attempts", st.Attempts).
		Int("too_few", st.TooFew).
		Int("too_many", st.TooMany).
		Msg("no board in range")
	return nil, st, fmt.Errorf("%s (range %s) after %d attempts: %w", d, want, st.Attempts, ErrNoPuzzle)
}

// GenerateAsync runs Generate on its own goroutine. The returned channel
// receives exactly one Result and is never closed.
func (g *Generator) GenerateAsync(ctx context.Context, seed int64, d Difficulty) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		p, st, err := g.Generate(ctx, seed, d)
		ch <- Result{Puzzle: p, Stats: st, Err: err}
	}()
	return ch
}

// drawLetters picks 2 distinct vowels and 5 distinct consonants, then moves
// one of the seven, chosen uniformly, to the center.
func drawLetters(rng *rand.Rand) (outer []rune, center rune) {
	all := append(pick(rng, vowels, 2), pick(rng, consonants, 5)...)
	i := rng.Intn(len(all))
	center = all[i]
	outer = make([]rune, 0, len(all)-1)
	outer = append(outer, all[:i]...)
	outer = append(outer, all[i+1:]...)
	return outer, center
}

// pick draws n distinct elements of pool without replacement.
func pick(rng *rand.Rand, pool []rune, n int) []rune {
	out := make([]rune, n)
	for i, j := range rng.Perm(len(pool))[:n] {
		out[i] = pool[j]
	}
	return out
}
