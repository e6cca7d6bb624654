package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/rybergy/apollo/internal/match"
	"github.com/rybergy/apollo/internal/othello"
)

const wsWriteWait = 10 * time.Second

// handleWatch plays black against white and streams every ply over a
// websocket, followed by a result message. The optional opening parameter
// starts the match after that many random plies.
func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	black, err := watchPlayer(q.Get("black"))
	if err != nil {
		writeError(w, fmt.Errorf("black: %w", err))
		return
	}
	white, err := watchPlayer(q.Get("white"))
	if err != nil {
		writeError(w, fmt.Errorf("white: %w", err))
		return
	}
	opening := 0
	if v := q.Get("opening"); v != "" {
		if opening, err = strconv.Atoi(v); err != nil || opening < 0 {
			writeError(w, fmt.Errorf("%w: opening must be a non-negative integer", errBadRequest))
			return
		}
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		log.Debug().Err(err).Msg("watch-upgrade")
		return
	}
	defer conn.Close()

	var writeErr error
	send := func(msg wsMessage) {
		if writeErr != nil {
			return
		}
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		writeErr = conn.WriteJSON(msg)
	}

	g := match.RandomGame(opening)
	match.Play(g, black.player, white.player, func(p match.Ply) {
		send(wsMessage{Type: "ply", Ply: &p})
	})

	winner, _ := g.Winner()
	send(wsMessage{Type: "result", Result: &MatchResult{
		Black:  black.spec.String(),
		White:  white.spec.String(),
		Board:  g.Board().Encode(),
		Blacks: g.Count(othello.Black),
		Whites: g.Count(othello.White),
		Winner: winnerName(winner),
	}})
	if writeErr != nil {
		log.Debug().Err(writeErr).Msg("watch-write")
		return
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match over"),
		time.Now().Add(wsWriteWait))
}

type watched struct {
	spec   match.Spec
	player match.Player
}

func watchPlayer(s string) (watched, error) {
	spec, err := match.ParseSpec(s)
	if err != nil {
		return watched{}, err
	}
	if spec.Depth > MaxDepth {
		return watched{}, fmt.Errorf("%w: depth %d exceeds %d", errBadRequest, spec.Depth, MaxDepth)
	}
	p, err := spec.Player()
	if err != nil {
		return watched{}, err
	}
	return watched{spec: spec, player: p}, nil
}
