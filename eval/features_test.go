package eval

import (
	"testing"

	"github.com/chessball/game"
	"github.com/stretchr/testify/assert"
)

const firstThreat = `-- -- -- -- -- -- --
-- -- -- -- -- -- --
-- -- -- -- -- -- --
-- -- -- WD -- -- --
-- -- -- NB -- -- --
-- -- -- -- -- -- --
`

const guarded = `-- -- -- -- -- -- --
-- -- -- -- -- -- --
-- -- -- -- -- -- --
-- -- -- WD -- -- --
-- -- -- NB -- -- --
-- -- BD -- BD -- --
`

func TestFeatureNames(t *testing.T) {
	f := Extract(game.NewGame(), game.First)
	m := f.Map()
	assert.Len(t, m, NumFeatures)
	for i, name := range Names {
		assert.Equal(t, f[i], m[name], name)
	}
	assert.Equal(t, "win_now", Names[WinNow])
	assert.Equal(t, "opp_between_ball_and_goal", Names[OppBetweenBallAndGoal])
	assert.Len(t, f.Float32(), NumFeatures)
}

func TestStartPosition(t *testing.T) {
	b := game.NewGame()
	first := Extract(b, game.First)
	second := Extract(b, game.Second)

	assert.Equal(t, 0.0, first[WinNow])
	assert.Equal(t, 0.0, first[LoseNow])
	assert.Equal(t, 0.0, first[UnavoidableWin])
	assert.InDelta(t, 0.4, first[BallRow], 1e-9)
	assert.InDelta(t, 0.6, second[BallRow], 1e-9)
	assert.InDelta(t, 0.4, first[BallRowValue], 1e-9)
	assert.InDelta(t, 0.6, second[BallRowValue], 1e-9)

	assert.Equal(t, 0, AdjacentPushers(b, game.First))
	assert.Equal(t, 2, AdjacentPushers(b, game.Second))
	assert.Equal(t, 0.25, second[AdjPushers])
	assert.Equal(t, 0.25, first[OppAdjPushers])

	friendly, enemy := ControlAroundBall(b, game.First)
	assert.Equal(t, 0, friendly)
	assert.Equal(t, 2, enemy)
	assert.Equal(t, -0.25, first[Control])
	assert.Equal(t, 0.25, second[Control])

	mob := float64(len(game.PossibleMoves(b, game.First))-len(game.PossibleMoves(b, game.Second))) / MobilityCap
	assert.InDelta(t, mob, first[Mobility], 1e-12)
	assert.InDelta(t, -mob, second[Mobility], 1e-12)
}

func TestVulnerableCountsEachPieceOnce(t *testing.T) {
	b := game.MustParse(`-- -- -- -- -- -- NB
-- -- -- BD -- -- --
-- -- BD WA -- -- --
-- -- -- -- -- -- --
WA BD -- -- -- -- --
-- -- -- -- -- -- --
`)
	assert.Equal(t, 1, VulnerablePieces(b, game.First))
	assert.InDelta(t, 0.2, Extract(b, game.First)[Vulnerable], 1e-12)
	assert.Equal(t, 0, VulnerablePieces(b, game.Second))
}

func TestApproxPushDistance(t *testing.T) {
	b := game.MustParse(firstThreat)
	assert.InDelta(t, 0.9, ApproxPushDistance(b, game.First), 1e-9)
	assert.InDelta(t, 0.2, ApproxPushDistance(b, game.Second), 1e-9)

	b = b.Clone()
	b.Remove(game.Coord{R: 3, C: 3})
	assert.InDelta(t, 0.8, ApproxPushDistance(b, game.First), 1e-9)
}

func TestOpponentsBetweenBallAndGoal(t *testing.T) {
	b := game.MustParse(`BA -- -- -- -- -- --
-- -- -- NB -- -- --
BD -- -- -- -- -- --
-- -- WA -- -- -- --
-- -- -- -- -- -- BA
-- -- -- BD -- -- --
`)
	assert.Equal(t, 2, OpponentsBetweenBallAndGoal(b, game.First))
	assert.Equal(t, 0, OpponentsBetweenBallAndGoal(b, game.Second))
	assert.Equal(t, 0, OpponentsBetweenBallAndGoal(b, game.Neutral))
}

func TestNoBall(t *testing.T) {
	b := game.NewBoard()
	b.Place(game.Coord{R: 2, C: 2}, game.Piece{Kind: game.Attacker, Owner: game.First})
	f := Extract(b, game.First)
	assert.Equal(t, 0.0, f[BallRow])
	assert.Equal(t, 0.0, f[BallInForbiddenCol])
	assert.Equal(t, -1.0, f[BallRowValue])
	assert.Equal(t, 0.0, f[PushDistance])
	assert.Equal(t, 0, AdjacentPushers(b, game.First))
}

func TestWinFeatures(t *testing.T) {
	b := game.MustParse(firstThreat)
	f := Extract(b, game.First)
	assert.Equal(t, 1.0, f[WinNow])
	assert.Equal(t, 1.0, f[UnavoidableWin])
	assert.Equal(t, 1.0, Extract(b, game.Second)[LoseNow])

	f = Extract(game.MustParse(guarded), game.First)
	assert.Equal(t, 1.0, f[WinNow])
	assert.Equal(t, 0.0, f[UnavoidableWin])
}

func TestEvaluateIsFeatureSum(t *testing.T) {
	for _, b := range []*game.Board{game.NewGame(), game.MustParse(guarded)} {
		f := Extract(b, game.First)
		var sum float64
		for _, v := range f {
			sum += v
		}
		assert.InDelta(t, sum, Evaluate(b, game.First), 1e-12)
	}
}
