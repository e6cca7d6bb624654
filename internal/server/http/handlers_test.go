package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rybergy/apollo/internal/config"
	"github.com/rybergy/apollo/internal/othello"
	"github.com/rybergy/apollo/internal/server/game"
)

func newTestRouter(t *testing.T) (*Handler, http.Handler) {
	t.Helper()
	defaults := config.DefaultConfig().Play
	defaults.Depth = 2
	h := NewHandler(game.NewManager(), defaults)
	return h, NewRouter(h, "")
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	_, h := newTestRouter(t)
	rr := do(t, h, "GET", "/healthz", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decode[map[string]any](t, rr)
	if body["ok"] != true || body["games"] != float64(0) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestNewGameDefaults(t *testing.T) {
	_, h := newTestRouter(t)
	rr := do(t, h, "POST", "/api/games", "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decode[GameResponse](t, rr)
	if resp.GameID == "" || resp.Engine != "ab-order:weight-mobility:2" {
		t.Fatalf("unexpected game %+v", resp)
	}
	if resp.HumanSide != othello.Black || resp.Board != "8/8/8/3XO3/3OX3/8/8/8" || resp.Status != "ongoing" {
		t.Fatalf("unexpected game %+v", resp)
	}
	if len(resp.Rows) != 8 || resp.Rows[3] != "...XO..." {
		t.Fatalf("rows %q", resp.Rows)
	}
	var notations []string
	for _, m := range resp.ValidMoves {
		notations = append(notations, m.Notation)
	}
	if strings.Join(notations, ",") != "e3,f4,c5,d6" {
		t.Fatalf("valid moves %v", notations)
	}
	if resp.Replies == nil || len(resp.Replies) != 0 {
		t.Fatalf("replies %v", resp.Replies)
	}
}

func TestNewGameAsWhite(t *testing.T) {
	_, h := newTestRouter(t)
	rr := do(t, h, "POST", "/api/games", `{"human_side":"white","algorithm":"mini","heuristic":"unit","depth":1}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decode[GameResponse](t, rr)
	if resp.Black != 4 || resp.White != 1 || len(resp.Replies) != 1 {
		t.Fatalf("engine should have opened: %+v", resp)
	}
	if resp.Replies[0].Side != othello.Black {
		t.Fatalf("reply side %v", resp.Replies[0].Side)
	}
}

func TestNewGameRejects(t *testing.T) {
	_, h := newTestRouter(t)
	cases := map[string]string{
		"bad json":       `{"depth":`,
		"bad side":       `{"human_side":"green"}`,
		"bad algorithm":  `{"algorithm":"nope"}`,
		"bad heuristic":  `{"heuristic":"nope"}`,
		"too deep":       `{"depth":99}`,
		"negative depth": `{"depth":-1}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := do(t, h, "POST", "/api/games", body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
			if decode[errorResponse](t, rr).Error == "" {
				t.Fatal("missing error message")
			}
		})
	}
}

func TestGetAndPlay(t *testing.T) {
	hd, h := newTestRouter(t)
	created := decode[GameResponse](t, do(t, h, "POST", "/api/games", ""))

	rr := do(t, h, "GET", "/api/games/"+created.GameID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := decode[GameResponse](t, rr); got.Board != created.Board {
		t.Fatalf("GET board %q, want %q", got.Board, created.Board)
	}

	rr = do(t, h, "POST", "/api/games/"+created.GameID+"/play", `{"move":"e3"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	played := decode[GameResponse](t, rr)
	if len(played.Replies) == 0 || played.Replies[0].Side != othello.White {
		t.Fatalf("expected an engine reply, got %+v", played.Replies)
	}
	s, err := hd.Games().Get(created.GameID)
	if err != nil {
		t.Fatal(err)
	}
	if s.Snapshot().Board.Encode() != played.Board {
		t.Fatal("response board differs from the session")
	}

	next := played.ValidMoves[0]
	body := `{"position":{"row":` + itoa(next.Row) + `,"col":` + itoa(next.Col) + `}}`
	if rr := do(t, h, "POST", "/api/games/"+created.GameID+"/play", body); rr.Code != http.StatusOK {
		t.Fatalf("position move: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestPlayErrors(t *testing.T) {
	_, h := newTestRouter(t)
	created := decode[GameResponse](t, do(t, h, "POST", "/api/games", ""))
	path := "/api/games/" + created.GameID + "/play"

	cases := []struct {
		name, path, body string
		want             int
	}{
		{"unknown game", "/api/games/nope/play", `{"move":"e3"}`, http.StatusNotFound},
		{"illegal move", path, `{"move":"a1"}`, http.StatusBadRequest},
		{"bad notation", path, `{"move":"zz"}`, http.StatusBadRequest},
		{"missing move", path, `{}`, http.StatusBadRequest},
		{"bad json", path, `{`, http.StatusBadRequest},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr := do(t, h, "POST", c.path, c.body)
			if rr.Code != c.want {
				t.Fatalf("expected %d, got %d: %s", c.want, rr.Code, rr.Body.String())
			}
		})
	}

	if rr := do(t, h, "GET", "/api/games/nope", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("GET unknown: expected 404, got %d", rr.Code)
	}
}

func TestPlayAfterGameOver(t *testing.T) {
	_, h := newTestRouter(t)
	created := decode[GameResponse](t, do(t, h, "POST", "/api/games", `{"algorithm":"mini","heuristic":"unit","depth":1}`))
	path := "/api/games/" + created.GameID + "/play"

	resp := created
	for i := 0; i < 64 && resp.Status != "over"; i++ {
		rr := do(t, h, "POST", path, `{"move":"`+resp.ValidMoves[0].Notation+`"}`)
		if rr.Code != http.StatusOK {
			t.Fatalf("turn %d: expected 200, got %d: %s", i, rr.Code, rr.Body.String())
		}
		resp = decode[GameResponse](t, rr)
	}
	if resp.Status != "over" || resp.Winner == "" {
		t.Fatalf("game did not finish: %+v", resp)
	}
	if rr := do(t, h, "POST", path, `{"move":"a1"}`); rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
}

func TestDeleteGame(t *testing.T) {
	_, h := newTestRouter(t)
	created := decode[GameResponse](t, do(t, h, "POST", "/api/games", ""))
	if rr := do(t, h, "DELETE", "/api/games/"+created.GameID, ""); rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if rr := do(t, h, "DELETE", "/api/games/"+created.GameID, ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestSearch(t *testing.T) {
	_, h := newTestRouter(t)
	rr := do(t, h, "POST", "/api/search", `{"side":"black","algorithm":"ab","heuristic":"unit","depth":1}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decode[SearchResponse](t, rr)
	if resp.Move == nil || resp.Move.Notation != "e3" || resp.Value != 3 {
		t.Fatalf("unexpected search %+v", resp)
	}
	if resp.NodesExpanded != 5 || resp.NodesGenerated != 4 {
		t.Fatalf("unexpected counters %+v", resp)
	}
}

func TestSearchPass(t *testing.T) {
	_, h := newTestRouter(t)
	// Black's only neighbour is its own disc at the edge: nothing to flank.
	rr := do(t, h, "POST", "/api/search", `{"board":"OX1","side":"black","algorithm":"mini","heuristic":"unit","depth":1}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if resp := decode[SearchResponse](t, rr); resp.Move != nil {
		t.Fatalf("expected a pass, got %+v", resp.Move)
	}
}

func TestSearchRejects(t *testing.T) {
	_, h := newTestRouter(t)
	cases := map[string]string{
		"no side":        `{"algorithm":"ab","heuristic":"unit","depth":1}`,
		"too deep":       `{"side":"black","depth":9}`,
		"bad board":      `{"side":"black","board":"8/8/Q"}`,
		"small weighted": `{"side":"black","board":"OX1","heuristic":"weight","depth":1}`,
		"bad algorithm":  `{"side":"black","algorithm":"nope","depth":1}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if rr := do(t, h, "POST", "/api/search", body); rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestStaticRoutes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>apollo</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := NewRouter(NewHandler(game.NewManager(), config.DefaultConfig().Play), dir)

	rr := do(t, h, "GET", "/", "")
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/web/" {
		t.Fatalf("expected redirect to /web/, got %d %q", rr.Code, rr.Header().Get("Location"))
	}
	rr = do(t, h, "GET", "/web/", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "apollo") {
		t.Fatalf("expected index, got %d %q", rr.Code, rr.Body.String())
	}
}
