package game

// PossiblePreviousMoves lists boards from which a single legal move by player
// would produce b, paired with that move. Ordering follows PossibleMoves: the
// moved piece's current cell row-major, then Directions, then simple, push,
// jump, tackle.
//
// The result overapproximates: predecessors carry no tackle memory and are
// not checked for reachability. Neutral has no moves.
func PossiblePreviousMoves(b *Board, player Player) []Transition {
	if player == Neutral {
		return nil
	}
	var retVal []Transition
	for i, p := range b.cells {
		if p.IsZero() || p.Owner != player {
			continue
		}
		at := Coord{i / b.cols, i % b.cols}
		for _, d := range Directions {
			for _, gen := range unmakers {
				if t, ok := gen(b, player, at, p, d); ok {
					retVal = append(retVal, t)
				}
			}
		}
	}
	return retVal
}

var unmakers = [...]generator{unSimple, unPush, unJump, unTackle}

// predecessor clones b without tackle memory.
func predecessor(b *Board) *Board {
	prev := b.Clone()
	prev.ClearLastTackle()
	return prev
}

func unSimple(b *Board, _ Player, at Coord, p Piece, d Coord) (Transition, bool) {
	from := at.Sub(d)
	if !b.Empty(from) {
		return Transition{}, false
	}
	prev := predecessor(b)
	prev.Remove(at)
	prev.Place(from, p)
	return Transition{Move{From: from, To: at, Detail: SimpleMove{}}, prev}, true
}

// unPush rebuilds a push whose mover now stands on the ball's old cell. Only
// the ball's old cell is checked against the forbidden columns.
func unPush(b *Board, _ Player, at Coord, p Piece, d Coord) (Transition, bool) {
	ball := at.Add(d)
	from := at.Sub(d)
	if !b.InBounds(ball) || !b.Empty(from) {
		return Transition{}, false
	}
	if q, _ := b.Get(ball); q.Kind != Ball {
		return Transition{}, false
	}
	if b.IsForbiddenCol(at.C) {
		return Transition{}, false
	}
	prev := predecessor(b)
	prev.Remove(ball)
	prev.Place(at, BallPiece)
	prev.Place(from, p)
	return Transition{Move{From: from, To: at, Detail: BallPush{BallTo: ball}}, prev}, true
}

func unJump(b *Board, _ Player, at Coord, p Piece, d Coord) (Transition, bool) {
	if p.Kind != Attacker {
		return Transition{}, false
	}
	over := at.Sub(d)
	from := over.Sub(d)
	if !b.InBounds(over) || !b.Empty(from) {
		return Transition{}, false
	}
	if q, ok := b.Get(over); !ok || q.Kind == Ball {
		return Transition{}, false
	}
	prev := predecessor(b)
	prev.Remove(at)
	prev.Place(from, p)
	return Transition{Move{From: from, To: at, Detail: AttackerJump{Over: over}}, prev}, true
}

// unTackle rebuilds a tackle: the victim now at at+d goes back to at and the
// defender returns to at-d.
func unTackle(b *Board, player Player, at Coord, p Piece, d Coord) (Transition, bool) {
	if p.Kind != Defender {
		return Transition{}, false
	}
	victimAt := at.Add(d)
	from := at.Sub(d)
	if !b.InBounds(victimAt) || !b.Empty(from) {
		return Transition{}, false
	}
	victim, ok := b.Get(victimAt)
	if !ok || victim.Kind == Ball || victim.Owner == player {
		return Transition{}, false
	}
	prev := predecessor(b)
	prev.Remove(victimAt)
	prev.Place(at, victim)
	prev.Place(from, p)
	return Transition{Move{From: from, To: at, Detail: DefenderTackle{PushedFrom: at, PushedTo: victimAt}}, prev}, true
}
