// internal/httpserver/routes_daily.go
//
// HTTP routes for the "puzzle of the day" mode:
//   - POST /daily/new      → start today's board for a difficulty ({difficulty})
//   - GET  /daily/history  → recorded daily results, newest first (?limit=N)
//
// Everyone with the same DAILY_SALT gets the same board per date and difficulty.

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/spellingbee/internal/store"
)

func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
		r.Get("/history", s.handleDailyHistory)
	})
}

// dailyNewReq is the payload for POST /daily/new.
type dailyNewReq struct {
	Difficulty string `json:"difficulty"`
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	var req dailyNewReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	s.startGame(w, r, req.Difficulty, true)
}

// historyRes is returned by /daily/history.
type historyRes struct {
	Results []store.DailyResult `json:"results"`
}

func (s *Server) handleDailyHistory(w http.ResponseWriter, r *http.Request) {
	limit := 30
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_limit", q)
			return
		}
		limit = n
	}
	rows, err := s.sess.History(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, historyRes{Results: rows})
}
