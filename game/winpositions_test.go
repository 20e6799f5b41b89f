package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEachCombination(t *testing.T) {
	var got [][]int
	eachCombination(4, 2, func(idx []int) bool {
		got = append(got, append([]int(nil), idx...))
		return true
	})
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)

	var n int
	assert.True(t, eachCombination(3, 0, func([]int) bool { n++; return true }))
	assert.Equal(t, 1, n)
	assert.True(t, eachCombination(2, 3, func([]int) bool { t.Fatal("called"); return true }))
	assert.False(t, eachCombination(5, 2, func([]int) bool { return false }))
}

func TestWinPositionsSmallBoard(t *testing.T) {
	for _, player := range []Player{First, Second} {
		seen := make(map[string]struct{})
		WinPositionsSize(3, 4, FullSet, player, func(b *Board) bool {
			ended, winner := Outcome(b)
			assert.True(t, ended)
			assert.Equal(t, player, winner)
			assert.Equal(t, len(FullSet), b.Count(func(p Piece) bool { return p.Owner != Neutral }))
			assert.Equal(t, 1, countBalls(b))
			seen[b.String()] = struct{}{}
			return true
		})
		// four ball columns, 11 free squares choose 10
		assert.Len(t, seen, 44, "%v", player)
	}
}

func TestWinPositionsOrder(t *testing.T) {
	var first *Board
	WinPositionsSize(3, 4, FullSet, First, func(b *Board) bool {
		first = b
		return false
	})
	require.NotNil(t, first)
	assert.Equal(t, `WA WA WD WD
WD BA BA BD
NB BD BD --
`, first.String())
}

func TestWinPositionsCanonicalStops(t *testing.T) {
	for _, player := range []Player{First, Second} {
		var boards []*Board
		WinPositions(player, func(b *Board) bool {
			boards = append(boards, b)
			return len(boards) < 3
		})
		require.Len(t, boards, 3)
		for _, b := range boards {
			ball, ok := b.FindBall()
			require.True(t, ok)
			assert.Equal(t, Coord{GoalRow(b, player), 0}, ball)
			assert.Equal(t, RowNum, b.Rows())
		}
		assert.False(t, boards[0].SamePosition(boards[1]))
	}

	WinPositions(Neutral, func(*Board) bool {
		t.Fatal("Neutral has no win positions")
		return false
	})
}
