// internal/session/session.go
//
// Single-player session: the one owner of the current game.
// Responsibilities:
//   - Restore the saved game at startup (falling back to an empty game).
//   - Start new games by running the generator in the background with a timeout.
//   - Serialize guesses, entry edits and shuffles behind one mutex.
//   - Persist after every change without blocking the caller.
//
// Notes:
//   - Saves run on goroutines; a newer snapshot is never overwritten by an older one.
//   - Save failures are logged at warn and otherwise ignored.
//   - Flush waits for outstanding saves (shutdown, tests).

package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/internal/daily"
	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/store"
)

// ErrGenerateTimeout is returned when a new game is not ready in time.
var ErrGenerateTimeout = errors.New("puzzle generation timed out")

const saveTimeout = 5 * time.Second

// Generator produces puzzles asynchronously. *puzzle.Generator satisfies it.
type Generator interface {
	GenerateAsync(ctx context.Context, seed int64, d puzzle.Difficulty) <-chan puzzle.Result
}

// Options tune a Session. Zero values pick defaults.
type Options struct {
	Timeout   time.Duration    // generation bound, default 30s
	DailySalt string           // secret mixed into daily seeds
	Now       func() time.Time // clock, default time.Now
}

// Session owns the current game.
type Session struct {
	gen   Generator
	store store.Store
	opts  Options

	mu   sync.Mutex
	game *game.Game
	rng  *rand.Rand
	seq  uint64 // bumped per queued save

	saveMu sync.Mutex
	saved  uint64 // seq of the newest snapshot written
	wg     sync.WaitGroup
}

// New builds a session with an empty game. Call Restore to load saved state.
func New(gen Generator, st store.Store, opts Options) *Session {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	seed, err := puzzle.NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return &Session{
		gen:   gen,
		store: st,
		opts:  opts,
		game:  game.Empty(),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Restore loads the saved game. Missing or unreadable state leaves an empty
// game; only store failures are returned.
func (s *Session) Restore(ctx context.Context) error {
	blob, err := s.store.Load(ctx, store.CurrentGame)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("load saved game: %w", err)
	}
	g, err := game.Restore(blob)
	if err != nil {
		log.Warn().Err(err).Msg("starting with an empty game")
	}

	s.mu.Lock()
	s.game = g
	s.mu.Unlock()

	log.Info().
		Bool("started", g.Started()).
		Str("difficulty", string(g.Difficulty)).
		Int("found", len(g.Guessed)).
		Msg("session restored")
	return nil
}

// NewGame generates a puzzle for d and makes it current. Daily games use a
// seed derived from today's date so every player sees the same board.
func (s *Session) NewGame(ctx context.Context, d puzzle.Difficulty, isDaily bool) (View, error) {
	var (
		seed     int64
		dailyKey string
		err      error
	)
	if isDaily {
		now := s.opts.Now()
		dailyKey = daily.DateKey(now)
		seed = daily.Seed(now, s.opts.DailySalt, string(d))
	} else if seed, err = puzzle.NewSeed(); err != nil {
		return View{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	var res puzzle.Result
	select {
	case res = <-s.gen.GenerateAsync(ctx, seed, d):
	case <-ctx.Done():
		res.Err = ctx.Err()
	}
	if errors.Is(res.Err, context.DeadlineExceeded) {
		res.Err = fmt.Errorf("%s: %w", d, ErrGenerateTimeout)
	}
	if res.Err != nil {
		log.Warn().Err(res.Err).Str("difficulty", string(d)).Msg("new game failed")
		return View{}, res.Err
	}

	g := game.New(res.Puzzle)
	g.Daily = dailyKey

	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = g
	s.persistLocked()
	log.Info().
		Str("game_id", g.ID).
		Str("difficulty", string(d)).
		Str("daily", dailyKey).
		Int("words", len(g.Remaining)).
		Int("points", g.PossiblePoints).
		Int("attempts", res.Stats.Attempts).
		Msg("new game")
	return viewOf(g), nil
}

// Current returns the current game.
func (s *Session) Current() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return viewOf(s.game)
}

// Guess submits word, or the entry buffer when word is empty.
func (s *Session) Guess(word string) (game.Outcome, View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		out game.Outcome
		err error
	)
	if word == "" {
		out, err = s.game.SubmitEntry()
	} else {
		out, err = s.game.Submit(word)
	}
	if err != nil {
		return out, viewOf(s.game), err
	}
	s.persistLocked()
	return out, viewOf(s.game), nil
}

// Entry replaces the entry buffer and returns the prefix hint.
func (s *Session) Entry(text string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.UpdateEntry(text)
	s.persistLocked()
	return viewOf(s.game)
}

// Shuffle reorders the outer letters.
func (s *Session) Shuffle() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Shuffle(s.rng)
	s.persistLocked()
	return viewOf(s.game)
}

// History lists recorded daily results, newest first.
func (s *Session) History(ctx context.Context, limit int) ([]store.DailyResult, error) {
	return s.store.DailyResults(ctx, limit)
}

// Flush blocks until queued saves have finished.
func (s *Session) Flush() { s.wg.Wait() }

// persistLocked queues a save of the current game. Caller holds s.mu.
func (s *Session) persistLocked() {
	blob, err := s.game.Encode()
	if err != nil {
		log.Warn().Err(err).Msg("encode game")
		return
	}
	var result *store.DailyResult
	if g := s.game; g.Daily != "" && g.Started() {
		result = &store.DailyResult{
			Date:           g.Daily,
			Difficulty:     string(g.Difficulty),
			GuessedPoints:  g.GuessedPoints,
			PossiblePoints: g.PossiblePoints,
			WordsFound:     len(g.Guessed),
			Rank:           g.Rank().String(),
		}
	}

	s.seq++
	seq := s.seq
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.saveMu.Lock()
		defer s.saveMu.Unlock()
		if seq <= s.saved {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := s.store.Save(ctx, store.CurrentGame, blob); err != nil {
			log.Warn().Err(err).Msg("save game")
			return
		}
		s.saved = seq
		if result != nil {
			if err := s.store.RecordDaily(ctx, *result); err != nil {
				log.Warn().Err(err).Str("date", result.Date).Msg("record daily result")
			}
		}
	}()
}
