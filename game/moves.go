package game

import "fmt"

// MoveKind enumerates the four move rules.
type MoveKind uint8

const (
	SimpleKind MoveKind = iota
	PushKind
	JumpKind
	TackleKind
)

func (k MoveKind) String() string {
	switch k {
	case SimpleKind:
		return "simple"
	case PushKind:
		return "push"
	case JumpKind:
		return "jump"
	case TackleKind:
		return "tackle"
	}
	return "UNKNOWN MOVE KIND"
}

// Detail carries the kind-specific payload of a move.
type Detail interface {
	Kind() MoveKind
	isDetail()
}

// SimpleMove steps one cell into an empty square.
type SimpleMove struct{}

// BallPush steps into the ball's cell and sends the ball to BallTo.
type BallPush struct{ BallTo Coord }

// AttackerJump leaps over the piece at Over.
type AttackerJump struct{ Over Coord }

// DefenderTackle pushes the opposing piece from PushedFrom to PushedTo.
type DefenderTackle struct{ PushedFrom, PushedTo Coord }

func (SimpleMove) Kind() MoveKind     { return SimpleKind }
func (BallPush) Kind() MoveKind       { return PushKind }
func (AttackerJump) Kind() MoveKind   { return JumpKind }
func (DefenderTackle) Kind() MoveKind { return TackleKind }

func (SimpleMove) isDetail()     {}
func (BallPush) isDetail()       {}
func (AttackerJump) isDetail()   {}
func (DefenderTackle) isDetail() {}

// Move describes a move for display and replay. The board it produces is authoritative.
type Move struct {
	From, To Coord
	Detail   Detail
}

func (m Move) Kind() MoveKind {
	if m.Detail == nil {
		return SimpleKind
	}
	return m.Detail.Kind()
}

// Same reports whether both moves share origin, destination and kind.
func (m Move) Same(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Kind() == other.Kind()
}

func (m Move) String() string {
	s := fmt.Sprintf("%v->%v", m.From, m.To)
	switch d := m.Detail.(type) {
	case BallPush:
		s += fmt.Sprintf(" (push ball->%v)", d.BallTo)
	case AttackerJump:
		s += fmt.Sprintf(" (jump over %v)", d.Over)
	case DefenderTackle:
		s += fmt.Sprintf(" (tackle push %v->%v)", d.PushedFrom, d.PushedTo)
	}
	return s
}

// Transition pairs a move with the board it produces.
type Transition struct {
	Move  Move
	Board *Board
}

// PossibleMoves lists every legal move for player. The order is row-major by
// origin, then Directions order, then simple, push, jump, tackle.
// Neutral has no moves.
func PossibleMoves(b *Board, player Player) []Transition {
	var retVal []Transition
	eachMove(b, player, func(t Transition) bool {
		retVal = append(retVal, t)
		return true
	})
	return retVal
}

// eachMove feeds moves to fn in PossibleMoves order until fn returns false.
func eachMove(b *Board, player Player, fn func(Transition) bool) {
	if player == Neutral {
		return
	}
	for i, p := range b.cells {
		if p.IsZero() || p.Owner != player {
			continue
		}
		from := Coord{i / b.cols, i % b.cols}
		for _, d := range Directions {
			for _, gen := range generators {
				if t, ok := gen(b, player, from, p, d); ok {
					if !fn(t) {
						return
					}
				}
			}
		}
	}
}

type generator func(b *Board, player Player, from Coord, p Piece, d Coord) (Transition, bool)

var generators = [...]generator{simpleMove, ballPush, attackerJump, defenderTackle}

func simpleMove(b *Board, _ Player, from Coord, p Piece, d Coord) (Transition, bool) {
	to := from.Add(d)
	if !b.Empty(to) {
		return Transition{}, false
	}
	nb := b.Clone()
	nb.ClearLastTackle()
	nb.Remove(from)
	nb.Place(to, p)
	return Transition{Move{From: from, To: to, Detail: SimpleMove{}}, nb}, true
}

func ballPush(b *Board, _ Player, from Coord, p Piece, d Coord) (Transition, bool) {
	ball := from.Add(d)
	if !b.InBounds(ball) {
		return Transition{}, false
	}
	if q, _ := b.Get(ball); q.Kind != Ball {
		return Transition{}, false
	}
	dest := ball.Add(d)
	if !b.Empty(dest) || b.IsForbiddenCol(dest.C) {
		return Transition{}, false
	}
	nb := b.Clone()
	nb.ClearLastTackle()
	nb.Remove(from)
	nb.Place(ball, p)
	nb.Place(dest, BallPiece)
	return Transition{Move{From: from, To: ball, Detail: BallPush{BallTo: dest}}, nb}, true
}

func attackerJump(b *Board, _ Player, from Coord, p Piece, d Coord) (Transition, bool) {
	if p.Kind != Attacker {
		return Transition{}, false
	}
	over := from.Add(d)
	to := over.Add(d)
	if !b.InBounds(over) || !b.Empty(to) {
		return Transition{}, false
	}
	if q, ok := b.Get(over); !ok || q.Kind == Ball {
		return Transition{}, false
	}
	if b.reversesTackle(over, from) {
		return Transition{}, false
	}
	nb := b.Clone()
	nb.ClearLastTackle()
	nb.Remove(from)
	nb.Place(to, p)
	return Transition{Move{From: from, To: to, Detail: AttackerJump{Over: over}}, nb}, true
}

func defenderTackle(b *Board, player Player, from Coord, p Piece, d Coord) (Transition, bool) {
	if p.Kind != Defender {
		return Transition{}, false
	}
	victimAt := from.Add(d)
	beyond := victimAt.Add(d)
	if !b.InBounds(victimAt) || !b.Empty(beyond) {
		return Transition{}, false
	}
	victim, ok := b.Get(victimAt)
	if !ok || victim.Kind == Ball || victim.Owner == player {
		return Transition{}, false
	}
	if b.reversesTackle(victimAt, from) {
		return Transition{}, false
	}
	nb := b.Clone()
	nb.Remove(from)
	nb.Place(beyond, victim)
	nb.Place(victimAt, p)
	nb.SetLastTackle(Tackle{From: victimAt, To: beyond})
	return Transition{Move{From: from, To: victimAt, Detail: DefenderTackle{PushedFrom: victimAt, PushedTo: beyond}}, nb}, true
}
