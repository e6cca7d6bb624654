package main

import (
	"fmt"

	"github.com/rybergy/apollo/internal/othello"
)

func main() {
	g := othello.NewDefaultGame()
	fmt.Println(g.Board())
	fmt.Println("Board:", g.Board().Encode())
	moves := g.ValidMoves(othello.Black)
	fmt.Println("Black moves:", len(moves), moves)
}
