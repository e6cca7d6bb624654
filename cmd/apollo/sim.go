package main

import (
	"fmt"
	"io"

	"github.com/rybergy/apollo/internal/match"
	"github.com/rybergy/apollo/internal/othello"
)

// runSim plays one game from the opening and prints the final board.
func runSim(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("sim: expected two alg:heur:depth specs (%s)", namesHelp())
	}
	players := make([]match.Player, 2)
	for i, s := range args {
		spec, err := match.ParseSpec(s)
		if err != nil {
			return err
		}
		if players[i], err = spec.Player(); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "%s: black\n", args[0])
	fmt.Fprintf(stdout, "%s: white\n", args[1])

	g := othello.NewDefaultGame()
	match.Play(g, players[0], players[1], nil)

	fmt.Fprintln(stdout, g.Board())
	black, white := g.Count(othello.Black), g.Count(othello.White)
	if w, ok := g.Winner(); ok {
		fmt.Fprintf(stdout, "%v wins %d-%d\n", w, black, white)
	} else {
		fmt.Fprintf(stdout, "tie %d-%d\n", black, white)
	}
	return nil
}
