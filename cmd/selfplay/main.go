// Command selfplay generates training examples from self-play games and
// optionally runs an arena tournament between two search depths.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/chessball"
	"github.com/chessball/internal/cli"
	"github.com/rs/zerolog/log"
)

var (
	confPath = flag.String("config", "", "JSON config file, defaults are used when empty")
	episodes = flag.Int("episodes", 10, "number of self-play games")
	outDir   = flag.String("out", "", "directory for the parquet batch (env "+cli.EnvOutDir+")")
	depth    = flag.Int("depth", -1, "search depth of the first agent, overrides the config (env "+cli.EnvDepth+")")
	games    = flag.Int("tournament", 0, "arena games to play after generating")
	source   = flag.String("source", "selfplay", "source tag stored with every row")
)

func main() {
	flag.Parse()
	cli.Setup()

	conf := chessball.DefaultConfig()
	if *confPath != "" {
		var err error
		if conf, err = chessball.LoadConfig(*confPath); err != nil {
			log.Fatal().Err(err).Msg("error loading config")
		}
	}
	conf.SearchConf.Depth = cli.Depth(*depth, conf.SearchConf.Depth)
	dir := *outDir
	if dir == "" {
		dir = cli.GetEnv(cli.EnvOutDir, "data")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := chessball.New(conf)
	examples, err := c.Generate(ctx, *episodes)
	if err != nil {
		log.Fatal().Err(err).Msg("error when generating examples")
	}
	path, err := chessball.SaveExamples(dir, *source, examples)
	if err != nil {
		log.Fatal().Err(err).Msg("error when saving examples")
	}
	log.Info().Str("path", path).Int("examples", len(examples)).Msg("self play done")

	if *games > 0 {
		if err := c.Tournament(ctx, *games); err != nil {
			log.Fatal().Err(err).Msg("error during tournament")
		}
	}
}
