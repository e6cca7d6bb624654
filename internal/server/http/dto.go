package httpserver

import (
	"github.com/rybergy/apollo/internal/match"
	"github.com/rybergy/apollo/internal/othello"
	"github.com/rybergy/apollo/internal/server/game"
)

// MoveDTO carries a cell both as coordinates and in algebraic notation.
type MoveDTO struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Notation string `json:"notation"`
}

func moveToDTO(p othello.Position) MoveDTO {
	return MoveDTO{Row: p.Row, Col: p.Col, Notation: p.String()}
}

func movesToDTO(ps []othello.Position) []MoveDTO {
	out := make([]MoveDTO, len(ps))
	for i, p := range ps {
		out[i] = moveToDTO(p)
	}
	return out
}

// NewGameRequest fields left empty fall back to the server's play defaults.
type NewGameRequest struct {
	HumanSide othello.Disc `json:"human_side"`
	Algorithm string       `json:"algorithm"`
	Heuristic string       `json:"heuristic"`
	Depth     int          `json:"depth"`
}

// PlayRequest names the human's move either as notation ("e3") or as a
// position. Notation wins when both are set.
type PlayRequest struct {
	Move     string            `json:"move"`
	Position *othello.Position `json:"position"`
}

type GameResponse struct {
	GameID     string       `json:"game_id"`
	Engine     string       `json:"engine"`
	HumanSide  othello.Disc `json:"human_side"`
	Board      string       `json:"board"`
	Rows       []string     `json:"rows"`
	ValidMoves []MoveDTO    `json:"valid_moves"`
	Black      int          `json:"black"`
	White      int          `json:"white"`
	Status     string       `json:"status"` // "ongoing" / "over"
	Winner     string       `json:"winner,omitempty"`
	Replies    []match.Ply  `json:"replies"`
}

func stateToResponse(st game.State) GameResponse {
	resp := GameResponse{
		GameID:     st.ID,
		Engine:     st.Spec.String(),
		HumanSide:  st.HumanSide,
		Board:      st.Board.Encode(),
		Rows:       boardRows(st.Board),
		ValidMoves: movesToDTO(st.ValidMoves),
		Black:      st.Black,
		White:      st.White,
		Status:     "ongoing",
		Replies:    st.Replies,
	}
	if resp.Replies == nil {
		resp.Replies = []match.Ply{}
	}
	if st.Over {
		resp.Status = "over"
		resp.Winner = winnerName(st.Winner)
	}
	return resp
}

func winnerName(d othello.Disc) string {
	if d == othello.Empty {
		return "tie"
	}
	b, _ := d.MarshalText()
	return string(b)
}

// boardRows renders one string per row: 'X' Black, 'O' White, '.' empty.
func boardRows(b *othello.Board) []string {
	rows := make([]string, b.Height())
	line := make([]byte, b.Width())
	for r := 0; r < b.Height(); r++ {
		for c := 0; c < b.Width(); c++ {
			switch b.At(othello.Pos(r, c)) {
			case othello.Black:
				line[c] = 'X'
			case othello.White:
				line[c] = 'O'
			default:
				line[c] = '.'
			}
		}
		rows[r] = string(line)
	}
	return rows
}

// SearchRequest asks for the engine's choice on an arbitrary encoded board
// without creating a session.
type SearchRequest struct {
	Board     string       `json:"board"`
	Side      othello.Disc `json:"side"`
	Algorithm string       `json:"algorithm"`
	Heuristic string       `json:"heuristic"`
	Depth     int          `json:"depth"`
}

type SearchResponse struct {
	Move           *MoveDTO `json:"move"` // null when the side has to pass
	Value          int64    `json:"value"`
	NodesExpanded  int      `json:"nodes_expanded"`
	NodesGenerated int      `json:"nodes_generated"`
	TimeMs         int64    `json:"time_ms"`
}

type wsMessage struct {
	Type   string       `json:"type"` // "ply" / "result" / "error"
	Ply    *match.Ply   `json:"ply,omitempty"`
	Result *MatchResult `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type MatchResult struct {
	Black  string `json:"black"`
	White  string `json:"white"`
	Board  string `json:"board"`
	Blacks int    `json:"black_discs"`
	Whites int    `json:"white_discs"`
	Winner string `json:"winner"`
}

type errorResponse struct {
	Error string `json:"error"`
}
