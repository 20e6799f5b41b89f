package game

// FullSet is the piece set of a complete game, in the order pieces are laid
// on the chosen squares.
var FullSet = []Piece{
	{Attacker, First}, {Attacker, First},
	{Defender, First}, {Defender, First}, {Defender, First},
	{Attacker, Second}, {Attacker, Second},
	{Defender, Second}, {Defender, Second}, {Defender, Second},
}

// WinPositions feeds yield every canonical board on which player has won:
// the ball on player's goal row and the FullSet on any other squares. It
// stops when yield returns false. Neutral has no win positions.
//
// The set is huge (about 7.9e9 boards per side), so boards are built one at
// a time and yield may keep them.
func WinPositions(player Player, yield func(*Board) bool) {
	WinPositionsSize(RowNum, ColNum, FullSet, player, yield)
}

// WinPositionsSize is WinPositions for a rows x cols board and any piece set.
// Ball columns go left to right; for each, piece squares are chosen in
// lexicographic row-major order.
func WinPositionsSize(rows, cols int, pieces []Piece, player Player, yield func(*Board) bool) {
	if player == Neutral {
		return
	}
	empty := NewBoardSize(rows, cols)
	goal := GoalRow(empty, player)

	squares := make([]Coord, 0, rows*cols-1)
	for c := 0; c < cols; c++ {
		ball := Coord{goal, c}
		squares = squares[:0]
		for _, sq := range empty.Coords() {
			if sq != ball {
				squares = append(squares, sq)
			}
		}
		more := eachCombination(len(squares), len(pieces), func(idx []int) bool {
			b := NewBoardSize(rows, cols)
			b.Place(ball, BallPiece)
			for i, j := range idx {
				b.Place(squares[j], pieces[i])
			}
			return yield(b)
		})
		if !more {
			return
		}
	}
}

// eachCombination feeds fn every k-subset of 0..n-1 as ascending indexes in
// lexicographic order. fn must not keep idx. It returns false if fn stopped it.
func eachCombination(n, k int, fn func(idx []int) bool) bool {
	if k > n || k < 0 {
		return true
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return false
		}
		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
