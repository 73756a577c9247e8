package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/session"
	"github.com/robalobadob/spellingbee/internal/store"
)

type stubGenerator struct{ err error }

func (g stubGenerator) GenerateAsync(ctx context.Context, seed int64, d puzzle.Difficulty) <-chan puzzle.Result {
	ch := make(chan puzzle.Result, 1)
	if g.err != nil {
		ch <- puzzle.Result{Err: g.err}
		return ch
	}
	ch <- puzzle.Result{Puzzle: &puzzle.Puzzle{
		Outer:      []rune("atsion"),
		Center:     'c',
		MinLength:  d.MinWordLength(),
		Difficulty: d,
		Words:      []string{"attic", "cats", "coats", "stoic", "tacit", "taco"},
	}}
	return ch
}

type stubDicts struct{}

func (stubDicts) Stats() (int, int) { return 3000, 900 }

func newTestServer(t *testing.T, gen session.Generator) (*Server, *session.Session) {
	t.Helper()
	sess := session.New(gen, store.NewMemoryStore(), session.Options{
		Timeout: time.Second,
		Now:     func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) },
	})
	t.Cleanup(sess.Flush)
	return New(sess, stubDicts{}, Options{}), sess
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealthAndDebug(t *testing.T) {
	srv, _ := newTestServer(t, stubGenerator{})
	h := srv.Handler()

	if rec := do(t, h, http.MethodGet, "/health", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Fatalf("/health = %d %s", rec.Code, rec.Body)
	}
	rec := do(t, h, http.MethodGet, "/debug/words", "")
	got := decode[map[string]int](t, rec)
	if got["standard"] != 3000 || got["kids"] != 900 {
		t.Fatalf("/debug/words = %v", got)
	}
	if rec := do(t, h, http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("/nope = %d", rec.Code)
	}
}

func TestGameFlow(t *testing.T) {
	srv, _ := newTestServer(t, stubGenerator{})
	h := srv.Handler()

	rec := do(t, h, http.MethodPost, "/game/guess", `{"word":"cats"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("guess before new game = %d", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/game/new", `{"difficulty":"medium"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("/game/new = %d %s", rec.Code, rec.Body)
	}
	v := decode[session.View](t, rec)
	if v.CenterLetter != "C" || v.Difficulty != puzzle.Medium || v.WordsTotal != 6 {
		t.Fatalf("view = %+v", v)
	}

	rec = do(t, h, http.MethodPost, "/game/guess", `{"word":"CATS"}`)
	res := decode[guessRes](t, rec)
	if res.Outcome != game.OutcomeCorrect || !res.Accepted || res.Game.GuessedPoints != 1 {
		t.Fatalf("guess = %+v", res)
	}

	tests := []struct {
		word string
		want game.Outcome
		msg  string
	}{
		{"cats", game.OutcomeAlreadyGuessed, "Already chosen"},
		{"xyz", game.OutcomeMissingCenterLetter, "Missing center letter"},
		{"cat", game.OutcomeTooShort, "Too short"},
		{"cast", game.OutcomeNotInSolutionSet, "Nope"},
	}
	for _, tt := range tests {
		rec := do(t, h, http.MethodPost, "/game/guess", `{"word":"`+tt.word+`"}`)
		res := decode[guessRes](t, rec)
		if res.Outcome != tt.want || res.Message != tt.msg || res.Accepted {
			t.Errorf("guess %q = %+v", tt.word, res)
		}
	}

	rec = do(t, h, http.MethodPost, "/game/entry", `{"text":"tac"}`)
	if v := decode[session.View](t, rec); v.PrefixCount != 2 {
		t.Fatalf("entry hint = %d", v.PrefixCount)
	}
	do(t, h, http.MethodPost, "/game/entry", `{"text":"tacit"}`)
	rec = do(t, h, http.MethodPost, "/game/guess", `{}`)
	if res := decode[guessRes](t, rec); res.Outcome != game.OutcomeCorrect || res.Game.EnteredWord != "" {
		t.Fatalf("guess from entry = %+v", res)
	}

	rec = do(t, h, http.MethodPost, "/game/shuffle", "")
	if v := decode[session.View](t, rec); len(v.OuterLetters) != 6 || v.CenterLetter != "C" {
		t.Fatalf("shuffle = %+v", v)
	}

	rec = do(t, h, http.MethodGet, "/game", "")
	if v := decode[session.View](t, rec); v.WordsFound != 2 || v.GuessedPoints != 6 {
		t.Fatalf("current = %+v", v)
	}
}

func TestNewGameErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  stubGenerator
		body string
		want int
	}{
		{"bad difficulty", stubGenerator{}, `{"difficulty":"extreme"}`, http.StatusBadRequest},
		{"bad json", stubGenerator{}, `{"difficulty":`, http.StatusBadRequest},
		{"no puzzle", stubGenerator{err: puzzle.ErrNoPuzzle}, `{"difficulty":"hard"}`, http.StatusServiceUnavailable},
		{"empty lexicon", stubGenerator{err: puzzle.ErrEmptyLexicon}, `{"difficulty":"kids"}`, http.StatusServiceUnavailable},
		{"default difficulty", stubGenerator{}, ``, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.gen)
			rec := do(t, srv.Handler(), http.MethodPost, "/game/new", tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body)
			}
		})
	}
}

func TestDailyRoutes(t *testing.T) {
	srv, sess := newTestServer(t, stubGenerator{})
	h := srv.Handler()

	rec := do(t, h, http.MethodPost, "/daily/new", `{"difficulty":"easy"}`)
	if v := decode[session.View](t, rec); v.Daily != "2026-10-19" {
		t.Fatalf("daily view = %+v", v)
	}
	do(t, h, http.MethodPost, "/game/guess", `{"word":"stoic"}`)
	sess.Flush()

	rec = do(t, h, http.MethodGet, "/daily/history?limit=5", "")
	res := decode[historyRes](t, rec)
	if len(res.Results) != 1 || res.Results[0].GuessedPoints != 5 || res.Results[0].Difficulty != "easy" {
		t.Fatalf("history = %+v", res)
	}

	if rec := do(t, h, http.MethodGet, "/daily/history?limit=zero", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad limit = %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, stubGenerator{})
	rec := do(t, srv.Handler(), http.MethodOptions, "/game/guess", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("origin = %q", got)
	}
}
