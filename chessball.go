// Package chessball plays ChessBall games between minimax agents and turns
// them into training data.
package chessball

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/chessball/dataset"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorgonia.org/tensor"
)

// ChessBall is the top level structure and the entry point of the API.
// It is a wrapper around the Arena and the example pipeline.
type ChessBall struct {
	// state
	Arena

	// config
	dataConf    dataset.Config
	maxExamples int
}

// New creates a ChessBall. It panics if conf is not valid.
func New(conf Config) *ChessBall {
	if !conf.IsValid() {
		panic("Config is not valid. Unable to proceed")
	}
	return &ChessBall{
		Arena:       MakeArena(conf),
		dataConf:    conf.DataConf,
		maxExamples: conf.MaxExamples,
	}
}

// Generate self-plays episodes games and returns their examples. When there
// are more than MaxExamples, a random subset is kept.
func (c *ChessBall) Generate(ctx context.Context, episodes int) ([]Example, error) {
	var ex []Example
	for e := 0; e < episodes; e++ {
		log.Debug().Int("episode", e).Msg("self play")

		// generates training examples
		exs, err := c.SelfPlay(ctx)
		if err != nil {
			return nil, errors.WithMessage(err, fmt.Sprintf("episode %d", e))
		}
		ex = append(ex, exs...)
	}

	if c.maxExamples > 0 && len(ex) > c.maxExamples {
		shuffleExamples(c.r, ex)
		ex = ex[:c.maxExamples]
	}
	return ex, nil
}

// Tournament plays games arena games after clearing both agents' statistics.
func (c *ChessBall) Tournament(ctx context.Context, games int) error {
	c.agentA.resetStats()
	c.agentB.resetStats()
	for i := 0; i < games; i++ {
		if _, err := c.Play(ctx); err != nil {
			return errors.WithMessage(err, fmt.Sprintf("arena game %d", i))
		}
	}

	log.Info().
		Float32("a_wins", c.agentA.Wins).
		Float32("a_loss", c.agentA.Loss).
		Float32("draw", c.agentA.Draw).
		Float32("a_win_rate", c.agentA.WinRate()).
		Float64("mean_plies", c.MeanGameLength()).
		Msg("tournament finished")
	return nil
}

// Tensors shuffles examples in place and packs whole batches of them into
// training tensors.
func (c *ChessBall) Tensors(examples []Example) (Xs, Values *tensor.Dense, batches int, err error) {
	shuffleExamples(c.r, examples)
	boards := make([][]float32, len(examples))
	values := make([]float32, len(examples))
	for i, ex := range examples {
		boards[i] = ex.Board
		values[i] = ex.Value
	}
	return dataset.Prepare(c.dataConf, boards, values)
}

func shuffleExamples(r *rand.Rand, examples []Example) {
	for i := range examples {
		j := r.Intn(i + 1)
		examples[i], examples[j] = examples[j], examples[i]
	}
}
