// Command movegen lists the legal moves of a position, and with -prev the
// moves that could have led to it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chessball/game"
	"github.com/chessball/internal/cli"
	"github.com/rs/zerolog/log"
)

var (
	boardPath = flag.String("board", "start", `board file in the textual format, or "start"`)
	player    = flag.String("player", "W", "side to move, W or B")
	prev      = flag.Bool("prev", false, "list the moves player could have just made instead")
	boards    = flag.Bool("boards", false, "print the resulting board after every move")
)

func main() {
	flag.Parse()
	cli.Setup()

	b := game.NewGame()
	if *boardPath != "start" {
		data, err := os.ReadFile(*boardPath)
		if err != nil {
			log.Fatal().Err(err).Msg("error reading board")
		}
		if b, err = game.Parse(string(data)); err != nil {
			log.Fatal().Err(err).Msg("error parsing board")
		}
	}
	if len(*player) != 1 {
		log.Fatal().Str("player", *player).Msg("player must be W or B")
	}
	p, ok := game.PlayerFromLetter((*player)[0])
	if !ok {
		log.Fatal().Str("player", *player).Msg("player must be W or B")
	}

	var ts []game.Transition
	if *prev {
		ts = game.PossiblePreviousMoves(b, p)
	} else {
		ts = game.PossibleMoves(b, p)
	}
	for _, t := range ts {
		fmt.Println(t.Move)
		if *boards {
			fmt.Println(t.Board)
		}
	}
	log.Info().Int("moves", len(ts)).Bool("prev", *prev).Msg("done")
}
