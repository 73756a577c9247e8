package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/rank"
	"github.com/robalobadob/spellingbee/internal/store"
)

// fakeGenerator returns a fixed board and records the seeds it was asked for.
type fakeGenerator struct {
	mu    sync.Mutex
	seeds []int64
	delay time.Duration
	err   error
}

func (f *fakeGenerator) GenerateAsync(ctx context.Context, seed int64, d puzzle.Difficulty) <-chan puzzle.Result {
	f.mu.Lock()
	f.seeds = append(f.seeds, seed)
	f.mu.Unlock()

	ch := make(chan puzzle.Result, 1)
	go func() {
		if f.delay > 0 {
			select {
			case <-time.After(f.delay):
			case <-ctx.Done():
				ch <- puzzle.Result{Err: ctx.Err()}
				return
			}
		}
		if f.err != nil {
			ch <- puzzle.Result{Err: f.err}
			return
		}
		ch <- puzzle.Result{Puzzle: &puzzle.Puzzle{
			Outer:      []rune("atsion"),
			Center:     'c',
			MinLength:  d.MinWordLength(),
			Difficulty: d,
			Words:      []string{"attic", "cats", "coats", "stoic", "tacit", "taco"},
		}, Stats: puzzle.Stats{Attempts: 1}}
	}()
	return ch
}

func fixedClock() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

func newTestSession(gen Generator, st store.Store) *Session {
	return New(gen, st, Options{Timeout: time.Second, DailySalt: "test", Now: fixedClock})
}

func TestNewGameAndGuess(t *testing.T) {
	st := store.NewMemoryStore()
	s := newTestSession(&fakeGenerator{}, st)

	v, err := s.NewGame(context.Background(), puzzle.Medium, false)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if !v.Started || v.CenterLetter != "C" || len(v.OuterLetters) != 6 || v.WordsTotal != 6 {
		t.Fatalf("view = %+v", v)
	}
	if v.PrefixCount != game.NoHint || v.Rank != rank.Beginner {
		t.Fatalf("fresh view = %+v", v)
	}

	out, v, err := s.Guess("tacit")
	if err != nil || out != game.OutcomeCorrect {
		t.Fatalf("Guess = %s, %v", out, err)
	}
	if v.GuessedPoints != 5 || v.WordsFound != 1 || v.FoundRecent[0] != "TACIT" {
		t.Fatalf("view after guess = %+v", v)
	}

	out, _, _ = s.Guess("tacit")
	if out != game.OutcomeAlreadyGuessed {
		t.Fatalf("repeat guess = %s", out)
	}
}

func TestGuessEntryBuffer(t *testing.T) {
	s := newTestSession(&fakeGenerator{}, store.NewMemoryStore())
	if _, err := s.NewGame(context.Background(), puzzle.Easy, false); err != nil {
		t.Fatal(err)
	}
	if v := s.Entry("tac"); v.PrefixCount != 2 || v.EnteredWord != "TAC" {
		t.Fatalf("Entry view = %+v", v)
	}
	s.Entry("taco")
	out, v, err := s.Guess("")
	if err != nil || out != game.OutcomeCorrect {
		t.Fatalf("Guess(entry) = %s, %v", out, err)
	}
	if v.EnteredWord != "" || v.PrefixCount != game.NoHint {
		t.Fatalf("entry not cleared: %+v", v)
	}
}

func TestGuessBeforeNewGame(t *testing.T) {
	s := newTestSession(&fakeGenerator{}, store.NewMemoryStore())
	if _, _, err := s.Guess("cats"); !errors.Is(err, game.ErrNotStarted) {
		t.Fatalf("err = %v, want ErrNotStarted", err)
	}
}

func TestPersistAndRestore(t *testing.T) {
	st := store.NewMemoryStore()
	s := newTestSession(&fakeGenerator{}, st)
	if _, err := s.NewGame(context.Background(), puzzle.Hard, false); err != nil {
		t.Fatal(err)
	}
	s.Guess("stoic")
	s.Guess("cats")
	s.Entry("co")
	s.Flush()

	other := newTestSession(&fakeGenerator{}, st)
	if err := other.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	v := other.Current()
	if !v.Started || v.WordsFound != 2 || v.EnteredWord != "CO" || v.Difficulty != puzzle.Hard {
		t.Fatalf("restored view = %+v", v)
	}
	if out, _, _ := other.Guess("stoic"); out != game.OutcomeAlreadyGuessed {
		t.Fatalf("restored guess = %s", out)
	}
}

func TestRestoreCorruptFallsBack(t *testing.T) {
	st := store.NewMemoryStore()
	if err := st.Save(context.Background(), store.CurrentGame, []byte("{broken")); err != nil {
		t.Fatal(err)
	}
	s := newTestSession(&fakeGenerator{}, st)
	if err := s.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if s.Current().Started {
		t.Fatal("corrupt state should yield an empty game")
	}
}

func TestDailyGame(t *testing.T) {
	st := store.NewMemoryStore()
	gen := &fakeGenerator{}
	s := newTestSession(gen, st)

	v, err := s.NewGame(context.Background(), puzzle.Easy, true)
	if err != nil {
		t.Fatal(err)
	}
	if v.Daily != "2026-10-19" {
		t.Fatalf("Daily = %q", v.Daily)
	}
	if _, err := s.NewGame(context.Background(), puzzle.Easy, true); err != nil {
		t.Fatal(err)
	}
	if gen.seeds[0] != gen.seeds[1] {
		t.Fatalf("daily seeds differ: %v", gen.seeds)
	}

	s.Guess("coats")
	s.Flush()
	hist, err := s.History(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 1 || hist[0].Date != "2026-10-19" || hist[0].GuessedPoints != 5 {
		t.Fatalf("history = %+v", hist)
	}
}

func TestNewGameErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
		want error
	}{
		{"no puzzle", &fakeGenerator{err: puzzle.ErrNoPuzzle}, puzzle.ErrNoPuzzle},
		{"timeout", &fakeGenerator{delay: time.Minute}, ErrGenerateTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.gen, store.NewMemoryStore(), Options{Timeout: 20 * time.Millisecond})
			_, err := s.NewGame(context.Background(), puzzle.Hard, false)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if s.Current().Started {
				t.Fatal("failed generation must not replace the game")
			}
		})
	}
}

func TestShuffleKeepsCenter(t *testing.T) {
	s := newTestSession(&fakeGenerator{}, store.NewMemoryStore())
	if _, err := s.NewGame(context.Background(), puzzle.Easy, false); err != nil {
		t.Fatal(err)
	}
	v := s.Shuffle()
	if v.CenterLetter != "C" || len(v.OuterLetters) != 6 {
		t.Fatalf("view = %+v", v)
	}
}
