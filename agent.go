package chessball

import (
	"context"
	"sync"

	"github.com/chessball/game"
	"github.com/chessball/minimax"
	"github.com/chewxy/math32"
)

// An Agent is a player driven by a Searcher.
type Agent struct {
	Searcher Searcher
	Player   game.Player

	// Statistics
	Wins float32
	Loss float32
	Draw float32
	sync.Mutex

	name string
}

// NewAgent creates an agent searching with conf.
func NewAgent(name string, conf minimax.Config) *Agent {
	return &Agent{
		Searcher: minimax.New(conf),
		name:     name,
	}
}

func (a *Agent) Name() string { return a.name }

// Search picks the agent's move on b.
func (a *Agent) Search(ctx context.Context, b *game.Board) (minimax.Result, error) {
	return a.Searcher.Search(ctx, b, a.Player)
}

// WinRate is the agent's score per game played, a draw counting half. It is
// NaN before the first game.
func (a *Agent) WinRate() float32 {
	a.Lock()
	defer a.Unlock()
	played := a.Wins + a.Loss + a.Draw
	if played == 0 {
		return math32.NaN()
	}
	return (a.Wins + a.Draw/2) / played
}

func (a *Agent) record(winner game.Player) {
	a.Lock()
	defer a.Unlock()
	switch winner {
	case a.Player:
		a.Wins++
	case a.Player.Opponent():
		a.Loss++
	default:
		a.Draw++
	}
}

func (a *Agent) resetStats() {
	a.Lock()
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
	a.Unlock()
}
