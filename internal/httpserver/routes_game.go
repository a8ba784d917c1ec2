// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game:
//   - POST /game/new   → start (or restart) the session's game
//   - POST /game/guess → submit a guess, returns feedback + game view
//   - GET  /game       → current game view
//   - DELETE /game     → abandon the session's game
//
// The secret never leaves the server while a game is in progress; it is
// included in the view only once the game is lost.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/store"
)

// Game modes accepted by POST /game/new.
const (
	modeRandom = "random"
	modeDaily  = "daily"
)

func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Get("/", s.handleGetGame)
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Delete("/", s.handleAbandon)
	})
}

// gameView is the player-visible projection of a game.State.
type gameView struct {
	Status       game.Status                  `json:"status"`
	Attempts     []game.Guess                 `json:"attempts"`
	AttemptsUsed int                          `json:"attemptsUsed"`
	Remaining    int                          `json:"remaining"`
	MaxAttempts  int                          `json:"maxAttempts"`
	WordLength   int                          `json:"wordLength"`
	Keyboard     map[string]game.LetterStatus `json:"keyboard"`
	Answer       string                       `json:"answer,omitempty"` // only once lost
}

func viewOf(st game.State) gameView {
	kb := make(map[string]game.LetterStatus)
	for r, ls := range st.LetterKnowledge() {
		kb[string(r)] = ls
	}
	v := gameView{
		Status:       st.Status(),
		Attempts:     st.Attempts(),
		AttemptsUsed: st.AttemptsUsed(),
		Remaining:    st.Remaining(),
		MaxAttempts:  game.MaxAttempts,
		WordLength:   game.WordLength,
		Keyboard:     kb,
	}
	if st.Status() == game.Lost {
		v.Answer, _ = st.Reveal()
	}
	return v
}

// -----------------------------------------------------------------------------
// POST /game/new

type newGameReq struct {
	Mode string `json:"mode"` // "random" (default) | "daily"
}

// handleNewGame starts a game for the session, replacing any current one.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid request body")
		return
	}
	if req.Mode == "" {
		req.Mode = modeRandom
	}

	var (
		st  game.State
		err error
	)
	switch req.Mode {
	case modeRandom:
		st, err = game.Start(s.words)
	case modeDaily:
		st, err = game.StartWithPicker(s.words, daily.Picker(s.now(), s.salt))
	default:
		writeError(w, http.StatusBadRequest, "bad_mode", "unknown mode "+req.Mode)
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("start game")
		writeError(w, http.StatusInternalServerError, "start_failed", "could not start a game")
		return
	}

	sid, err := s.sessions.ensure(w, r)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("issue session")
		writeError(w, http.StatusInternalServerError, "session_failed", "could not create session")
		return
	}
	unlock := s.locks.lock(sid)
	err = s.store.Save(r.Context(), sid, st)
	unlock()
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed", "could not save game")
		return
	}

	hlog.FromRequest(r).Info().Str("mode", req.Mode).Msg("new game")
	_ = json.NewEncoder(w).Encode(viewOf(st))
}

// -----------------------------------------------------------------------------
// POST /game/guess

type guessReq struct {
	Guess string `json:"guess"`
}

type guessRes struct {
	Feedback []game.LetterStatus `json:"feedback"` // empty when the game was already over
	Game     gameView            `json:"game"`
}

// handleGuess applies a guess to the session's game and persists the result.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid request body")
		return
	}
	sid, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	defer s.locks.lock(sid)()

	st, ok := s.loadGame(w, r, sid)
	if !ok {
		return
	}

	next, fb, err := game.Submit(st, req.Guess)
	switch {
	case errors.Is(err, game.ErrIncompleteGuess):
		writeError(w, http.StatusBadRequest, "incomplete_guess", game.Prompt(err))
		return
	case errors.Is(err, game.ErrUnknownWord):
		writeError(w, http.StatusBadRequest, "unknown_word", game.Prompt(err))
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("submit guess")
		writeError(w, http.StatusInternalServerError, "guess_failed", "could not apply guess")
		return
	}

	if fb != nil {
		if err := s.store.Save(r.Context(), sid, next); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("save game")
			writeError(w, http.StatusInternalServerError, "save_failed", "could not save game")
			return
		}
		if next.Finished() {
			hlog.FromRequest(r).Info().
				Str("status", string(next.Status())).
				Int("attempts", next.AttemptsUsed()).
				Msg("game finished")
		}
	} else {
		fb = []game.LetterStatus{}
	}

	_ = json.NewEncoder(w).Encode(guessRes{Feedback: fb, Game: viewOf(next)})
}

// -----------------------------------------------------------------------------
// GET /game

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sid, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	if st, ok := s.loadGame(w, r, sid); ok {
		_ = json.NewEncoder(w).Encode(viewOf(st))
	}
}

// -----------------------------------------------------------------------------
// DELETE /game

// handleAbandon drops the session's current game without revealing it. The
// session cookie stays; the next POST /game/new starts fresh.
func (s *Server) handleAbandon(w http.ResponseWriter, r *http.Request) {
	sid, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	defer s.locks.lock(sid)()

	if _, ok := s.loadGame(w, r, sid); !ok {
		return
	}
	if err := s.store.Delete(r.Context(), sid); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("delete game")
		writeError(w, http.StatusInternalServerError, "delete_failed", "could not abandon game")
		return
	}
	hlog.FromRequest(r).Info().Msg("game abandoned")
	w.WriteHeader(http.StatusNoContent)
}

// sessionID returns the verified session ID, writing a 404 when the request
// carries none.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid, ok := s.sessions.current(r)
	if !ok {
		writeError(w, http.StatusNotFound, "no_game", "start a game first")
	}
	return sid, ok
}

// loadGame fetches the session's current game, writing a 404 when there is
// none.
func (s *Server) loadGame(w http.ResponseWriter, r *http.Request, sid string) (game.State, bool) {
	st, err := s.store.Get(r.Context(), sid)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no_game", "start a game first")
		return game.State{}, false
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("load game")
		writeError(w, http.StatusInternalServerError, "load_failed", "could not load game")
		return game.State{}, false
	}
	return st, true
}
