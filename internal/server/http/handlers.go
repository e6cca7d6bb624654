package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/rybergy/apollo/internal/config"
	"github.com/rybergy/apollo/internal/engine"
	"github.com/rybergy/apollo/internal/match"
	"github.com/rybergy/apollo/internal/othello"
	"github.com/rybergy/apollo/internal/server/game"
)

// MaxDepth caps every search requested over HTTP.
const MaxDepth = 8

var errBadRequest = errors.New("bad request")

// Handler serves the /api routes.
type Handler struct {
	games    *game.Manager
	defaults config.PlayConfig
	upgrader websocket.Upgrader
}

func NewHandler(games *game.Manager, defaults config.PlayConfig) *Handler {
	return &Handler{
		games:    games,
		defaults: defaults,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

func (h *Handler) Games() *game.Manager {
	return h.games
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "games": h.games.Len()})
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, fmt.Errorf("%w: bad json: %v", errBadRequest, err))
			return
		}
	}
	spec := match.Spec{
		Algorithm: orDefault(req.Algorithm, h.defaults.Algorithm),
		Heuristic: orDefault(req.Heuristic, h.defaults.Heuristic),
		Depth:     req.Depth,
	}
	if spec.Depth == 0 {
		spec.Depth = h.defaults.Depth
	}
	if spec.Depth > MaxDepth {
		writeError(w, fmt.Errorf("%w: depth %d exceeds %d", errBadRequest, spec.Depth, MaxDepth))
		return
	}
	side := req.HumanSide
	if side == othello.Empty {
		side = h.defaults.HumanSide
	}

	s, err := h.games.NewGame(side, spec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stateToResponse(s.Snapshot()))
}

func (h *Handler) handleGetGame(w http.ResponseWriter, r *http.Request) {
	s, err := h.games.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToResponse(s.Snapshot()))
}

func (h *Handler) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.games.Get(id); err != nil {
		writeError(w, err)
		return
	}
	h.games.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: bad json: %v", errBadRequest, err))
		return
	}

	var p othello.Position
	switch {
	case req.Move != "":
		var err error
		if p, err = othello.ParsePosition(req.Move); err != nil {
			writeError(w, err)
			return
		}
	case req.Position != nil:
		p = *req.Position
	default:
		writeError(w, fmt.Errorf("%w: missing move", errBadRequest))
		return
	}

	st, err := h.games.Play(chi.URLParam(r, "id"), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToResponse(st))
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: bad json: %v", errBadRequest, err))
		return
	}
	if req.Side != othello.Black && req.Side != othello.White {
		writeError(w, fmt.Errorf("%w: side must be black or white", errBadRequest))
		return
	}
	if req.Depth < 0 || req.Depth > MaxDepth {
		writeError(w, fmt.Errorf("%w: depth must be in [0, %d]", errBadRequest, MaxDepth))
		return
	}

	board := othello.DefaultBoard()
	if req.Board != "" {
		var err error
		if board, err = othello.DecodeBoard(req.Board); err != nil {
			writeError(w, err)
			return
		}
	}
	heuristic := orDefault(req.Heuristic, h.defaults.Heuristic)
	if engine.NeedsStandardBoard(heuristic) &&
		(board.Width() != othello.DefaultWidth || board.Height() != othello.DefaultHeight) {
		writeError(w, fmt.Errorf("%w: heuristic '%s' needs an %dx%d board", errBadRequest, heuristic, othello.DefaultWidth, othello.DefaultHeight))
		return
	}

	search, err := engine.New(orDefault(req.Algorithm, h.defaults.Algorithm), heuristic)
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	res := search.Search(othello.NewGame(board), req.Side, req.Depth)
	resp := SearchResponse{
		Value:          int64(res.Value),
		NodesExpanded:  search.NodesExpanded(),
		NodesGenerated: search.NodesGenerated(),
		TimeMs:         time.Since(start).Milliseconds(),
	}
	if res.Found {
		mv := moveToDTO(res.Move)
		resp.Move = &mv
	}
	writeJSON(w, http.StatusOK, resp)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("write-json")
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrInvalidSide),
		errors.Is(err, game.ErrInvalidDepth),
		errors.Is(err, match.ErrInvalidSpec),
		errors.Is(err, engine.ErrUnknownAlgorithm),
		errors.Is(err, engine.ErrUnknownHeuristic),
		errors.Is(err, othello.ErrInvalidPosition),
		errors.Is(err, othello.ErrInvalidBoardString):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
