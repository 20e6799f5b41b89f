package chessball

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/chessball/eval"
	"github.com/chessball/game"
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// Arena represents a game arena where two agents meet.
type Arena struct {
	r              *rand.Rand
	board          *game.Board
	enc            GameEncoder
	agentA, agentB *Agent

	conf Config

	// only relevant to statistics
	name       string
	gameNumber int       // arena games played
	episode    int       // self-play games played
	lengths    []float64 // plies of every finished arena game
}

// MakeArena makes an arena for the starting position.
func MakeArena(conf Config) Arena {
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	name := conf.Name
	if name == "" {
		name = "UNKNOWN GAME"
	}
	enc := conf.Encoder
	if enc == nil {
		enc = game.InputEncoder
	}

	return Arena{
		r:      rand.New(rand.NewSource(seed)),
		board:  game.NewGame(),
		enc:    enc,
		agentA: NewAgent("A", conf.SearchConf),
		agentB: NewAgent("B", conf.OpponentConf),
		conf:   conf,
		name:   name,
	}
}

// SelfPlay lets agent A play both sides of one game and returns an example
// for every position it moved from. Values are filled in once the result is known.
func (a *Arena) SelfPlay(ctx context.Context) (examples []Example, err error) {
	gameID := fmt.Sprintf("%s-selfplay-%d", a.name, a.episode)
	a.board = game.NewGame()

	pick := func(toMove game.Player) *Agent {
		a.agentA.Player = toMove
		return a.agentA
	}
	observe := func(ply int, toMove game.Player) {
		ex := Example{
			Board:    a.enc(a.board, toMove),
			Features: eval.Extract(a.board, toMove).Float32(),
			GameID:   gameID,
			Ply:      ply,
			Player:   toMove,
			Position: a.board.String(),
		}
		if validExample(ex) {
			examples = append(examples, ex)
		}
	}

	winner, plies, err := a.playOut(ctx, pick, observe)
	if err != nil {
		return nil, err
	}

	for i := range examples {
		switch {
		case winner == game.Neutral: // draw
			examples[i].Value = 0
		case examples[i].Player == winner:
			examples[i].Value = 1
		default:
			examples[i].Value = -1
		}
	}
	a.episode++
	log.Info().
		Str("game", gameID).
		Str("winner", winner.String()).
		Int("plies", plies).
		Int("examples", len(examples)).
		Msg("self play finished")
	return examples, nil
}

// Play plays a game between the two agents and records the result. Agent A
// plays First in even-numbered games and Second in odd ones. A draw returns Neutral.
func (a *Arena) Play(ctx context.Context) (winner game.Player, err error) {
	a.agentA.Player, a.agentB.Player = game.First, game.Second
	if a.gameNumber%2 == 1 {
		a.agentA.Player, a.agentB.Player = game.Second, game.First
	}
	a.board = game.NewGame()

	pick := func(toMove game.Player) *Agent {
		if a.agentA.Player == toMove {
			return a.agentA
		}
		return a.agentB
	}
	winner, plies, err := a.playOut(ctx, pick, nil)
	if err != nil {
		return game.Neutral, err
	}

	a.agentA.record(winner)
	a.agentB.record(winner)
	a.lengths = append(a.lengths, float64(plies))
	log.Info().
		Str("arena", a.name).
		Int("game", a.gameNumber).
		Str("winner", winner.String()).
		Int("plies", plies).
		Msg("game over")
	a.gameNumber++
	return winner, nil
}

// playOut plays from a.board with First to move until a goal is scored, the
// side to move is stuck, or MaxPlies is reached. The last two are draws.
func (a *Arena) playOut(ctx context.Context, pick func(game.Player) *Agent, observe func(ply int, toMove game.Player)) (winner game.Player, plies int, err error) {
	toMove := game.First
	for plies = 0; plies < a.conf.MaxPlies; plies++ {
		if ended, w := game.Outcome(a.board); ended {
			return w, plies, nil
		}
		if observe != nil {
			observe(plies, toMove)
		}
		next, ok, err := a.next(ctx, pick(toMove), plies)
		if err != nil {
			return game.Neutral, plies, err
		}
		if !ok {
			return game.Neutral, plies, nil
		}
		a.board = next
		toMove = toMove.Opponent()
	}
	if ended, w := game.Outcome(a.board); ended {
		return w, plies, nil
	}
	return game.Neutral, plies, nil
}

// next returns the board after agent's move. Opening plies are random.
func (a *Arena) next(ctx context.Context, agent *Agent, ply int) (*game.Board, bool, error) {
	if ply < a.conf.RandomOpening {
		moves := game.PossibleMoves(a.board, agent.Player)
		if len(moves) == 0 {
			return nil, false, nil
		}
		return moves[a.r.Intn(len(moves))].Board, true, nil
	}

	res, err := agent.Search(ctx, a.board)
	if err != nil {
		return nil, false, errors.WithMessage(err, fmt.Sprintf("agent %s failed to search", agent.name))
	}
	if !res.Found() {
		return nil, false, nil
	}
	return res.Board, true, nil
}

// GameNumber returns the number of arena games played so far.
func (a *Arena) GameNumber() int { return a.gameNumber }

// Name of the game
func (a *Arena) Name() string { return a.name }

// Board returns the position the last game ended on.
func (a *Arena) Board() *game.Board { return a.board }

// Agents returns both agents. A searches with SearchConf, B with OpponentConf.
func (a *Arena) Agents() (A, B *Agent) { return a.agentA, a.agentB }

// MeanGameLength is the average number of plies of the arena games played so far.
func (a *Arena) MeanGameLength() float64 {
	if len(a.lengths) == 0 {
		return 0
	}
	return stat.Mean(a.lengths, nil)
}

func validExample(ex Example) bool {
	for _, vs := range [][]float32{ex.Board, ex.Features} {
		for _, v := range vs {
			if math32.IsInf(v, 0) || math32.IsNaN(v) {
				return false
			}
		}
	}
	return true
}
