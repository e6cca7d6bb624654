package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rybergy/apollo/internal/config"
	"github.com/rybergy/apollo/internal/match"
	"github.com/rybergy/apollo/internal/othello"
	"github.com/rybergy/apollo/internal/server/game"
)

// runPlay is a line-based game against the engine. Each line is a move in
// algebraic notation; "q" quits.
func runPlay(cfg config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	pc := cfg.Play
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.StringVar(&pc.Algorithm, "algorithm", pc.Algorithm, "engine search algorithm")
	fs.StringVar(&pc.Heuristic, "heuristic", pc.Heuristic, "engine heuristic")
	fs.IntVar(&pc.Depth, "depth", pc.Depth, "engine search depth")
	fs.TextVar(&pc.HumanSide, "side", pc.HumanSide, "your colour: black or white")
	if err := fs.Parse(args); err != nil {
		return err
	}

	games := game.NewManager()
	s, err := games.NewGame(pc.HumanSide, match.Spec{Algorithm: pc.Algorithm, Heuristic: pc.Heuristic, Depth: pc.Depth})
	if err != nil {
		return err
	}

	st := s.Snapshot()
	printReplies(stdout, st.Replies)
	in := bufio.NewScanner(stdin)
	for {
		fmt.Fprintln(stdout, st.Board)
		fmt.Fprintf(stdout, "black %d, white %d\n", st.Black, st.White)
		if st.Over {
			printOutcome(stdout, st)
			return nil
		}

		fmt.Fprintf(stdout, "%v to move %s, q to quit: ", st.HumanSide, notations(st.ValidMoves))
		if !in.Scan() {
			fmt.Fprintln(stdout)
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		}

		p, err := othello.ParsePosition(line)
		if err != nil {
			fmt.Fprintln(stdout, "Invalid position!")
			continue
		}
		next, err := games.Play(s.ID, p)
		if err != nil {
			fmt.Fprintln(stdout, "Invalid position!")
			continue
		}
		st = next
		printReplies(stdout, st.Replies)
	}
}

func notations(ps []othello.Position) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return "(" + strings.Join(out, " ") + ")"
}

func printReplies(w io.Writer, plies []match.Ply) {
	for _, p := range plies {
		if !p.Found {
			fmt.Fprintln(w, "No valid moves for computer")
			continue
		}
		fmt.Fprintf(w, "%v plays %s (value %d)\n", p.Side, p.Move, p.Value)
	}
}

func printOutcome(w io.Writer, st game.State) {
	switch st.Winner {
	case othello.Empty:
		fmt.Fprintln(w, "Game over: tie")
	case st.HumanSide:
		fmt.Fprintln(w, "Game over: you win")
	default:
		fmt.Fprintln(w, "Game over: the computer wins")
	}
}
