package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// midgame has every move kind available to both sides.
const midgame = `-- -- -- BD -- -- --
-- -- BA -- -- BD --
-- -- WA NB BA -- --
-- BD WD WA -- -- --
-- -- -- -- WD -- --
-- WD -- -- -- -- --
`

func countBalls(b *Board) int {
	return b.Count(func(p Piece) bool { return p.Kind == Ball })
}

func TestPossibleMovesClosure(t *testing.T) {
	expectedChanges := map[MoveKind]int{
		SimpleKind: 2,
		JumpKind:   2,
		PushKind:   3,
		TackleKind: 3,
	}
	boards := []*Board{NewGame(), MustParse(midgame)}
	for _, b := range boards {
		before := b.String()
		for _, player := range []Player{First, Second} {
			moves := PossibleMoves(b, player)
			require.NotEmpty(t, moves)
			seen := make(map[MoveKind]bool)
			for _, tr := range moves {
				kind := tr.Move.Kind()
				seen[kind] = true
				assert.Len(t, b.Diff(tr.Board), expectedChanges[kind], "%v %v", player, tr.Move)
				assert.Equal(t, 1, countBalls(tr.Board), "%v %v", player, tr.Move)

				p, ok := tr.Board.Get(tr.Move.To)
				require.True(t, ok, "%v", tr.Move)
				assert.Equal(t, player, p.Owner)
				assert.True(t, tr.Board.Empty(tr.Move.From), "%v", tr.Move)
			}
			if b.String() == midgame {
				assert.Len(t, seen, 4, "%v should have every move kind", player)
			}
		}
		assert.Equal(t, before, b.String(), "source board must not change")
	}
}

func TestPossibleMovesDeterministic(t *testing.T) {
	b := MustParse(midgame)
	first := PossibleMoves(b, Second)
	second := PossibleMoves(b, Second)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Move.Same(second[i].Move))
		assert.True(t, first[i].Board.Eq(second[i].Board))
	}
}

func TestPossibleMovesOrder(t *testing.T) {
	b := MustParse(`-- -- -- -- -- -- --
-- -- -- -- -- -- --
-- -- -- -- -- -- --
-- -- -- WA -- -- --
-- -- -- -- -- -- --
-- -- -- -- -- -- NB
`)
	moves := PossibleMoves(b, First)
	require.Len(t, moves, len(Directions))
	for i, tr := range moves {
		assert.Equal(t, SimpleKind, tr.Move.Kind())
		assert.Equal(t, Coord{3, 3}.Add(Directions[i]), tr.Move.To)
	}
}

func TestNeutralHasNoMoves(t *testing.T) {
	assert.Empty(t, PossibleMoves(NewGame(), Neutral))
}

func TestSingleBallPush(t *testing.T) {
	b := MustParse(`-- -- -- -- -- -- --
-- -- -- -- -- -- --
-- -- -- NB -- -- --
-- -- -- WD -- -- --
-- -- -- -- -- -- --
-- -- -- -- -- -- --
`)
	var pushes []Transition
	for _, tr := range PossibleMoves(b, First) {
		if tr.Move.Kind() == PushKind {
			pushes = append(pushes, tr)
		}
	}
	require.Len(t, pushes, 1)
	push := pushes[0]
	assert.Equal(t, Move{From: Coord{3, 3}, To: Coord{2, 3}, Detail: BallPush{BallTo: Coord{1, 3}}}, push.Move)

	ball, ok := push.Board.FindBall()
	require.True(t, ok)
	assert.Equal(t, Coord{1, 3}, ball)
	p, _ := push.Board.Get(Coord{2, 3})
	assert.Equal(t, Piece{Defender, First}, p)
}

func TestBallPushForbiddenColumn(t *testing.T) {
	b := MustParse(`-- -- -- -- -- -- --
-- -- -- -- -- -- --
-- NB WD -- -- -- --
-- -- -- -- -- -- --
-- -- -- -- -- -- --
-- -- -- -- -- -- --
`)
	for _, tr := range PossibleMoves(b, First) {
		assert.NotEqual(t, PushKind, tr.Move.Kind(), "%v pushes into column 0", tr.Move)
	}
}

func TestJumpAndTackleRules(t *testing.T) {
	b := MustParse(`-- -- -- -- -- -- --
-- -- -- -- -- -- --
-- WA NB -- -- -- --
-- WA WD BA -- -- --
-- -- -- -- -- -- --
-- -- -- -- -- -- --
`)
	moves := PossibleMoves(b, First)
	find := func(from, to Coord) (Transition, bool) {
		for _, tr := range moves {
			if tr.Move.From == from && tr.Move.To == to {
				return tr, true
			}
		}
		return Transition{}, false
	}

	// attacker jumps over its own defender
	jump, ok := find(Coord{3, 1}, Coord{3, 3})
	assert.False(t, ok, "landing cell is occupied")
	jump, ok = find(Coord{2, 1}, Coord{4, 3})
	require.True(t, ok)
	assert.Equal(t, AttackerJump{Over: Coord{3, 2}}, jump.Move.Detail)

	// no jumping over the ball
	_, ok = find(Coord{2, 1}, Coord{2, 3})
	assert.False(t, ok)

	// defender tackles the opposing attacker from (3,3) to (3,4)
	tackle, ok := find(Coord{3, 2}, Coord{3, 3})
	require.True(t, ok)
	assert.Equal(t, DefenderTackle{PushedFrom: Coord{3, 3}, PushedTo: Coord{3, 4}}, tackle.Move.Detail)
	victim, _ := tackle.Board.Get(Coord{3, 4})
	assert.Equal(t, Piece{Attacker, Second}, victim)
	mem, tackled := tackle.Board.LastTackle()
	require.True(t, tackled)
	assert.Equal(t, Tackle{From: Coord{3, 3}, To: Coord{3, 4}}, mem)

	// defenders never tackle their own side
	for _, tr := range moves {
		if tr.Move.Kind() != TackleKind {
			continue
		}
		p, _ := b.Get(tr.Move.To)
		assert.Equal(t, Second, p.Owner, "%v", tr.Move)
	}
}

func TestAntiOscillation(t *testing.T) {
	b := MustParse(`-- -- -- -- -- -- NB
-- -- -- -- -- -- --
-- -- -- BA -- -- --
-- -- -- WD -- -- --
-- -- -- -- -- -- --
-- -- -- -- -- -- --
`)
	tackler, pushedFrom, pushedTo := Coord{3, 3}, Coord{2, 3}, Coord{1, 3}

	var after *Board
	for _, tr := range PossibleMoves(b, First) {
		if tr.Move.Kind() == TackleKind && tr.Move.From == tackler {
			after = tr.Board
		}
	}
	require.NotNil(t, after)

	replies := PossibleMoves(after, Second)
	require.NotEmpty(t, replies)
	for _, tr := range replies {
		var over Coord
		switch d := tr.Move.Detail.(type) {
		case AttackerJump:
			over = d.Over
		case DefenderTackle:
			over = d.PushedFrom
		default:
			_, tackled := tr.Board.LastTackle()
			assert.False(t, tackled, "%v should clear the tackle memory", tr.Move)
			continue
		}
		assert.False(t, over == pushedFrom && tr.Move.From == tackler, "%v", tr.Move)
		assert.False(t, over == pushedFrom && tr.Move.From == pushedTo, "%v jumps straight back", tr.Move)
	}

	// Without the memory the victim may jump straight back over the tackler.
	free := after.Clone()
	free.ClearLastTackle()
	var jumpedBack bool
	for _, tr := range PossibleMoves(free, Second) {
		if j, ok := tr.Move.Detail.(AttackerJump); ok && j.Over == pushedFrom && tr.Move.From == pushedTo {
			jumpedBack = true
		}
	}
	assert.True(t, jumpedBack)
}

func TestMoveString(t *testing.T) {
	m := Move{From: Coord{3, 3}, To: Coord{2, 3}, Detail: BallPush{BallTo: Coord{1, 3}}}
	assert.Equal(t, "3,3->2,3 (push ball->1,3)", m.String())
	assert.Equal(t, "push", m.Kind().String())
	assert.Equal(t, SimpleKind, Move{}.Kind())
}
