package eval

import (
	"github.com/chessball/game"
	"gonum.org/v1/gonum/floats"
)

// Weights turns a feature vector into a linear score: Bias plus the dot
// product of Coef and the features.
type Weights struct {
	Coef Features `json:"coef"`
	Bias float64  `json:"bias"`
}

// DefaultWeights are the hand-tuned weights of the linear scorer. Features
// without a tuned weight, such as ball_row_value, weigh 0.
func DefaultWeights() Weights {
	var w Weights
	w.Coef[WinNow] = 1e6
	w.Coef[LoseNow] = -1e6
	w.Coef[BallRow] = 12
	w.Coef[BallInForbiddenCol] = -5
	w.Coef[AdjPushers] = 30
	w.Coef[OppAdjPushers] = -30
	w.Coef[Control] = 20
	w.Coef[Mobility] = 1
	w.Coef[PushDistance] = 20
	w.Coef[UnavoidableWin] = 200
	w.Coef[Vulnerable] = -15
	w.Coef[OppBetweenBallAndGoal] = 8
	return w
}

// Weighted scores f with w.
func (f Features) Weighted(w Weights) float64 {
	return w.Bias + floats.Dot(w.Coef[:], f[:])
}

// EvaluateWeighted scores b from player's point of view with w. The search
// keeps using Evaluate; this is for analysis and for comparing weight sets.
func EvaluateWeighted(b *game.Board, player game.Player, w Weights) float64 {
	return Extract(b, player).Weighted(w)
}
