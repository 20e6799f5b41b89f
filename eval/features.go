// Package eval scores ChessBall positions with a fixed set of hand-made features.
package eval

import (
	"github.com/chessball/game"
	"gonum.org/v1/gonum/floats"
)

// Normalisation constants. They are part of the engine's playing strength;
// changing them changes which moves the search prefers.
const (
	Neighbours  = 8
	MobilityCap = 60
	MaxPieces   = 5
)

// Feature indexes. Features are always extracted and summed in this order.
const (
	WinNow = iota
	LoseNow
	BallRow
	BallInForbiddenCol
	AdjPushers
	OppAdjPushers
	Control
	Mobility
	PushDistance
	UnavoidableWin
	Vulnerable
	BallRowValue
	OppBetweenBallAndGoal

	NumFeatures
)

// Names maps a feature index to its name.
var Names = [NumFeatures]string{
	"win_now",
	"lose_now",
	"ball_row",
	"ball_in_forbidden_col",
	"adj_pushers",
	"opp_adj_pushers",
	"control",
	"mobility",
	"push_distance",
	"unavoidable_win",
	"vulnerable",
	"ball_row_value",
	"opp_between_ball_and_goal",
}

// Features is a feature vector seen from one player.
type Features [NumFeatures]float64

// Map returns the features keyed by name.
func (f Features) Map() map[string]float64 {
	retVal := make(map[string]float64, NumFeatures)
	for i, v := range f {
		retVal[Names[i]] = v
	}
	return retVal
}

// Float32 returns the features as a float32 slice for training examples.
func (f Features) Float32() []float32 {
	retVal := make([]float32, NumFeatures)
	for i, v := range f {
		retVal[i] = float32(v)
	}
	return retVal
}

// Sum is the static evaluation: the unweighted sum of all features.
func (f Features) Sum() float64 { return floats.Sum(f[:]) }

// Evaluate scores b from player's point of view.
func Evaluate(b *game.Board, player game.Player) float64 {
	f := Extract(b, player)
	return f.Sum()
}

// Extract computes every feature of b for player.
func Extract(b *game.Board, player game.Player) Features {
	var f Features
	opp := player.Opponent()
	wins := game.HasWinningMove(b, player)

	f[WinNow] = flag(wins)
	f[LoseNow] = flag(game.HasWinningMove(b, opp))
	if ball, ok := b.FindBall(); ok {
		f[BallRow] = ballProgress(b, player, ball)
		f[BallInForbiddenCol] = flag(b.IsForbiddenCol(ball.C))
	}
	f[AdjPushers] = float64(AdjacentPushers(b, player)) / Neighbours
	f[OppAdjPushers] = float64(AdjacentPushers(b, opp)) / Neighbours

	friendly, enemy := ControlAroundBall(b, player)
	f[Control] = float64(friendly-enemy) / Neighbours
	f[Mobility] = float64(len(game.PossibleMoves(b, player))-len(game.PossibleMoves(b, opp))) / MobilityCap
	f[PushDistance] = ApproxPushDistance(b, player)
	f[UnavoidableWin] = flag(wins && !game.IsWinAvoidableByOpponent(b, player))
	f[Vulnerable] = float64(VulnerablePieces(b, player)) / MaxPieces
	f[BallRowValue] = BallRowFor(b, player)
	f[OppBetweenBallAndGoal] = float64(OpponentsBetweenBallAndGoal(b, player)) / MaxPieces
	return f
}

func flag(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// maxDist is the longest possible ball-to-goal distance in rows.
func maxDist(b *game.Board) float64 {
	return float64(b.Rows() - 1)
}

func ballProgress(b *game.Board, player game.Player, ball game.Coord) float64 {
	span := maxDist(b)
	if span == 0 {
		return 1
	}
	return 1 - float64(goalDist(b, player, ball))/span
}

func goalDist(b *game.Board, player game.Player, ball game.Coord) int {
	d := game.GoalRow(b, player) - ball.R
	if d < 0 {
		return -d
	}
	return d
}

// forward is the direction player pushes the ball to score.
func forward(player game.Player) game.Coord {
	if player == game.Second {
		return game.Coord{R: -1}
	}
	return game.Coord{R: 1}
}
