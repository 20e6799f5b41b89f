package game

import "fmt"

const (
	// RowNum and ColNum are the canonical board dimensions.
	RowNum = 6
	ColNum = 7
)

// Player owns pieces. Neutral only ever owns the ball.
type Player uint8

const (
	First Player = iota
	Second
	Neutral
)

// Opponent returns the other side. Neutral maps to itself.
func (p Player) Opponent() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	}
	return Neutral
}

// Letter is the single character used in the textual board.
func (p Player) Letter() byte {
	switch p {
	case First:
		return 'W'
	case Second:
		return 'B'
	}
	return 'N'
}

func (p Player) String() string {
	switch p {
	case First:
		return "First"
	case Second:
		return "Second"
	case Neutral:
		return "Neutral"
	}
	return "UNKNOWN PLAYER"
}

// PlayerFromLetter is the inverse of Letter.
func PlayerFromLetter(c byte) (Player, bool) {
	switch c {
	case 'W':
		return First, true
	case 'B':
		return Second, true
	case 'N':
		return Neutral, true
	}
	return Neutral, false
}

// PieceKind is the type of a piece. The zero value marks an empty cell.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Attacker
	Defender
	Ball
)

func (k PieceKind) Letter() byte {
	switch k {
	case Attacker:
		return 'A'
	case Defender:
		return 'D'
	case Ball:
		return 'B'
	}
	return '-'
}

func (k PieceKind) String() string {
	switch k {
	case Attacker:
		return "Attacker"
	case Defender:
		return "Defender"
	case Ball:
		return "Ball"
	}
	return "None"
}

func kindFromLetter(c byte) (PieceKind, bool) {
	switch c {
	case 'A':
		return Attacker, true
	case 'D':
		return Defender, true
	case 'B':
		return Ball, true
	}
	return NoKind, false
}

// Piece is a board occupant.
type Piece struct {
	Kind  PieceKind
	Owner Player
}

// BallPiece is the only piece Neutral owns.
var BallPiece = Piece{Kind: Ball, Owner: Neutral}

func (p Piece) IsZero() bool { return p.Kind == NoKind }

func (p Piece) String() string {
	if p.IsZero() {
		return "--"
	}
	return string([]byte{p.Owner.Letter(), p.Kind.Letter()})
}

// Coord is a (row, column) pair. Row 0 is Second's goal row.
type Coord struct {
	R, C int
}

func (c Coord) Add(d Coord) Coord { return Coord{c.R + d.R, c.C + d.C} }
func (c Coord) Sub(d Coord) Coord { return Coord{c.R - d.R, c.C - d.C} }
func (c Coord) Scale(n int) Coord { return Coord{c.R * n, c.C * n} }
func (c Coord) String() string    { return fmt.Sprintf("%d,%d", c.R, c.C) }

// Directions lists the 8 neighbour offsets in generation order:
// orthogonal first, then diagonal.
var Directions = [8]Coord{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
	{-1, -1},
	{-1, 1},
	{1, -1},
	{1, 1},
}
