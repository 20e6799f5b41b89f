package chessball

import (
	"context"

	"github.com/chessball/dataset"
	"github.com/chessball/game"
	"github.com/chessball/minimax"
)

// Config for the ChessBall structure.
// It holds attributes that impact the searchers and the example pipeline
// as well as objects that facilitate the interactions with the end-user (eg: Encoder).
type Config struct {
	Name         string         `json:"name"`
	SearchConf   minimax.Config `json:"search_conf"`   // searcher of the first agent, also used for self-play
	OpponentConf minimax.Config `json:"opponent_conf"` // searcher of the second agent in arena games
	DataConf     dataset.Config `json:"data_conf"`

	MaxPlies      int   `json:"max_plies"`      // a game reaching this many plies is a draw
	MaxExamples   int   `json:"max_examples"`   // maximum number of examples kept by Generate, 0 keeps all
	RandomOpening int   `json:"random_opening"` // opening plies played at random to diversify games
	Seed          int64 `json:"seed"`           // 0 seeds from the clock

	// extensions
	Encoder GameEncoder `json:"-"`
}

// DefaultConfig returns a configuration for the canonical board.
func DefaultConfig() Config {
	return Config{
		Name:          "ChessBall",
		SearchConf:    minimax.DefaultConfig(),
		OpponentConf:  minimax.DefaultConfig(),
		DataConf:      dataset.DefaultConf(game.RowNum, game.ColNum, game.Planes),
		MaxPlies:      120,
		RandomOpening: 2,
		Encoder:       game.InputEncoder,
	}
}

func (c Config) IsValid() bool {
	return c.SearchConf.IsValid() &&
		c.OpponentConf.IsValid() &&
		c.DataConf.IsValid() &&
		c.MaxPlies > 0 &&
		c.MaxExamples >= 0 &&
		c.RandomOpening >= 0
}

// GameEncoder encodes a board, seen by the side to move, as a slice of floats.
type GameEncoder func(b *game.Board, toMove game.Player) []float32

// Example is a representation of an example.
type Example struct {
	Board    []float32 // encoded position
	Features []float32 // evaluator features for Player
	Value    float32   // final result for Player: 1 win, -1 loss, 0 draw

	GameID   string
	Ply      int
	Player   game.Player
	Position string // textual board
}

// Searcher is anything that can pick a move. *minimax.Searcher is one.
type Searcher interface {
	Search(ctx context.Context, b *game.Board, player game.Player) (minimax.Result, error)
}
