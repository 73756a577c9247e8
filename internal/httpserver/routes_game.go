// internal/httpserver/routes_game.go
//
// HTTP routes for the current game:
//   - GET  /game          → current view
//   - POST /game/new      → generate a new puzzle ({difficulty, daily})
//   - POST /game/entry    → replace the entry buffer ({text}), returns the hint
//   - POST /game/guess    → submit {word}; an empty word submits the entry buffer
//   - POST /game/shuffle  → reorder the outer letters

package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/session"
)

func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Get("/", s.handleCurrent)
		r.Post("/new", s.handleNewGame)
		r.Post("/entry", s.handleEntry)
		r.Post("/guess", s.handleGuess)
		r.Post("/shuffle", s.handleShuffle)
	})
}

func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.sess.Current())
}

// newGameReq is the payload for POST /game/new.
type newGameReq struct {
	Difficulty string `json:"difficulty"` // kids | easy | medium | hard (default easy)
	Daily      bool   `json:"daily"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	s.startGame(w, r, req.Difficulty, req.Daily)
}

// startGame is shared by /game/new and /daily/new.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, difficulty string, daily bool) {
	if difficulty == "" {
		difficulty = string(puzzle.Easy)
	}
	d, err := puzzle.ParseDifficulty(difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_difficulty", err.Error())
		return
	}

	v, err := s.sess.NewGame(r.Context(), d, daily)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, v)
	case errors.Is(err, puzzle.ErrNoPuzzle),
		errors.Is(err, puzzle.ErrEmptyLexicon),
		errors.Is(err, session.ErrGenerateTimeout),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "generation_failed", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

// entryReq is the payload for POST /game/entry.
type entryReq struct {
	Text string `json:"text"`
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	var req entryReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.sess.Entry(req.Text))
}

// guessReq/Res are the payloads for POST /game/guess.
type guessReq struct {
	Word string `json:"word"`
}
type guessRes struct {
	Outcome  game.Outcome `json:"outcome"`
	Message  string       `json:"message"`
	Accepted bool         `json:"accepted"`
	Game     session.View `json:"game"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	out, v, err := s.sess.Guess(req.Word)
	if errors.Is(err, game.ErrNotStarted) {
		writeError(w, http.StatusConflict, "no_game", err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, guessRes{
		Outcome:  out,
		Message:  out.Message(),
		Accepted: out == game.OutcomeCorrect,
		Game:     v,
	})
}

func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.sess.Shuffle())
}
