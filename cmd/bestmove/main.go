// Command bestmove prints the move the engine picks on a position.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chessball/game"
	"github.com/chessball/internal/cli"
	"github.com/chessball/minimax"
	"github.com/rs/zerolog/log"
)

var (
	boardPath = flag.String("board", "start", `board file in the textual format, or "start"`)
	player    = flag.String("player", "W", "side to move, W or B")
	depth     = flag.Int("depth", -1, "search depth, 0 only evaluates (env "+cli.EnvDepth+", default 2)")
	parallel  = flag.Int("parallel", 1, "goroutines used at the root")
	dotPath   = flag.String("dot", "", "write the search tree in graphviz dot format to this file")
	verbose   = flag.Bool("v", false, "log search progress")
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
	if !ok || p == game.Neutral {
		log.Fatal().Str("player", *player).Msg("player must be W or B")
	}

	conf := minimax.DefaultConfig()
	conf.Depth = cli.Depth(*depth, conf.Depth)
	conf.Parallel = *parallel
	conf.Verbose = *verbose
	conf.Trace = *dotPath != ""
	if !conf.IsValid() {
		log.Fatal().Interface("config", conf).Msg("invalid search config")
	}

	s := minimax.New(conf)
	res, err := s.Search(context.Background(), b, p)
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}

	st := s.Stats()
	log.Info().Int64("nodes", st.Nodes).Int64("leaves", st.Leaves).Int64("terminal", st.Terminal).Msg("searched")
	if res.Found() {
		fmt.Printf("move %v score %v\n%v", res.Move, res.Score, res.Board)
	} else {
		fmt.Printf("no move, score %v\n", res.Score)
	}

	if *dotPath != "" {
		dot, err := s.Trace().DOT()
		if err != nil {
			log.Fatal().Err(err).Msg("error rendering trace")
		}
		if err := os.WriteFile(*dotPath, []byte(dot), 0o644); err != nil {
			log.Fatal().Err(err).Msg("error writing trace")
		}
	}
}
