package eval

import (
	"testing"

	"github.com/chessball/game"
	"github.com/stretchr/testify/assert"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 0.0, w.Bias)
	assert.Equal(t, 12.0, w.Coef[BallRow])
	assert.Equal(t, 0.0, w.Coef[BallRowValue])
	assert.Equal(t, -w.Coef[WinNow], w.Coef[LoseNow])
	assert.Equal(t, -w.Coef[AdjPushers], w.Coef[OppAdjPushers])
}

func TestEvaluateWeighted(t *testing.T) {
	var ones Weights
	for i := range ones.Coef {
		ones.Coef[i] = 1
	}
	for _, b := range []*game.Board{game.NewGame(), game.MustParse(guarded)} {
		for _, p := range []game.Player{game.First, game.Second} {
			assert.InDelta(t, Evaluate(b, p), EvaluateWeighted(b, p, ones), 1e-9)

			biased := ones
			biased.Bias = 3
			assert.InDelta(t, Evaluate(b, p)+3, EvaluateWeighted(b, p, biased), 1e-9)
		}
	}

	var zero Weights
	zero.Bias = -2
	assert.Equal(t, -2.0, EvaluateWeighted(game.NewGame(), game.First, zero))
}

func TestDefaultWeightsFavourTheWinner(t *testing.T) {
	b := game.MustParse(firstThreat)
	w := DefaultWeights()
	assert.Greater(t, EvaluateWeighted(b, game.First, w), 1e5)
	assert.Less(t, EvaluateWeighted(b, game.Second, w), -1e5)

	f := Extract(game.NewGame(), game.First)
	var want float64
	for i, v := range f {
		want += w.Coef[i] * v
	}
	assert.InDelta(t, want, f.Weighted(w), 1e-9)
}
