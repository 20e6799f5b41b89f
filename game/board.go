package game

import "fmt"

// Tackle remembers where the last defender tackle pushed its victim.
type Tackle struct {
	From, To Coord
}

// Board is a rows x cols grid stored row-major. A Board produced by the move
// generator is never mutated afterwards; callers that want to edit one should
// Clone it first.
type Board struct {
	rows, cols int
	cells      []Piece

	lastTackle Tackle
	tackled    bool
}

// NewBoard returns an empty board with the canonical dimensions.
func NewBoard() *Board { return NewBoardSize(RowNum, ColNum) }

// NewBoardSize returns an empty rows x cols board.
func NewBoardSize(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", rows, cols))
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Piece, rows*cols),
	}
}

// NewGame returns the starting position. Each side has three defenders on its
// own back row and two attackers one row in; the ball starts at (2,3).
func NewGame() *Board {
	b := NewBoard()
	for _, c := range []int{1, 3, 5} {
		b.Place(Coord{0, c}, Piece{Defender, Second})
		b.Place(Coord{RowNum - 1, c}, Piece{Defender, First})
	}
	for _, c := range []int{2, 4} {
		b.Place(Coord{1, c}, Piece{Attacker, Second})
		b.Place(Coord{RowNum - 2, c}, Piece{Attacker, First})
	}
	b.Place(Coord{2, 3}, BallPiece)
	return b
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.R >= 0 && c.R < b.rows && c.C >= 0 && c.C < b.cols
}

func (b *Board) idx(c Coord) int {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("invalid board coordinates %v on %dx%d board", c, b.rows, b.cols))
	}
	return c.R*b.cols + c.C
}

// Place puts p at c, replacing whatever was there. Panics when c is off the board.
func (b *Board) Place(c Coord, p Piece) { b.cells[b.idx(c)] = p }

// Remove empties c. Panics when c is off the board.
func (b *Board) Remove(c Coord) { b.cells[b.idx(c)] = Piece{} }

// Get returns the piece at c and whether the cell is occupied. Panics when c is off the board.
func (b *Board) Get(c Coord) (Piece, bool) {
	p := b.cells[b.idx(c)]
	return p, !p.IsZero()
}

// Empty reports whether c is on the board and holds no piece.
func (b *Board) Empty(c Coord) bool {
	return b.InBounds(c) && b.cells[b.idx(c)].IsZero()
}

// FindBall returns the first ball in row-major order.
func (b *Board) FindBall() (Coord, bool) {
	for i, p := range b.cells {
		if p.Kind == Ball {
			return Coord{i / b.cols, i % b.cols}, true
		}
	}
	return Coord{}, false
}

// IsForbiddenCol reports whether the ball may not be pushed into col.
func (b *Board) IsForbiddenCol(col int) bool {
	return col == 0 || col == b.cols-1
}

// Coords lists every coordinate in row-major order.
func (b *Board) Coords() []Coord {
	retVal := make([]Coord, 0, len(b.cells))
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			retVal = append(retVal, Coord{r, c})
		}
	}
	return retVal
}

// LastTackle returns the tackle that produced this board, if any.
func (b *Board) LastTackle() (Tackle, bool) { return b.lastTackle, b.tackled }

// SetLastTackle records t as the tackle that produced this board.
func (b *Board) SetLastTackle(t Tackle) {
	b.lastTackle = t
	b.tackled = true
}

// ClearLastTackle forgets the tackle memory.
func (b *Board) ClearLastTackle() {
	b.lastTackle = Tackle{}
	b.tackled = false
}

// reversesTackle reports whether a jump or tackle by the piece at origin over
// (or into) over would undo the tackle that produced this board.
func (b *Board) reversesTackle(over, origin Coord) bool {
	return b.tackled && b.lastTackle.From == over && b.lastTackle.To == origin
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	retVal := *b
	retVal.cells = make([]Piece, len(b.cells))
	copy(retVal.cells, b.cells)
	return &retVal
}

// Eq reports whether both boards have the same size, pieces and tackle memory.
func (b *Board) Eq(other *Board) bool {
	if !b.SamePosition(other) {
		return false
	}
	return b.tackled == other.tackled && b.lastTackle == other.lastTackle
}

// SamePosition compares only size and piece placement.
func (b *Board) SamePosition(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Diff lists the coordinates whose contents differ between b and other.
// Both boards must share dimensions.
func (b *Board) Diff(other *Board) []Coord {
	if b.rows != other.rows || b.cols != other.cols {
		panic("cannot diff boards of different sizes")
	}
	var retVal []Coord
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			retVal = append(retVal, Coord{i / b.cols, i % b.cols})
		}
	}
	return retVal
}

// Count returns how many cells hold a piece matching pred.
func (b *Board) Count(pred func(Piece) bool) int {
	var n int
	for _, p := range b.cells {
		if !p.IsZero() && pred(p) {
			n++
		}
	}
	return n
}
