package game

import "github.com/pkg/errors"

// GoalRow is the row player must bring the ball to. Second scores on row 0,
// everyone else on the last row.
func GoalRow(b *Board, player Player) int {
	if player == Second {
		return 0
	}
	return b.rows - 1
}

func ballOnGoal(b *Board, player Player) bool {
	ball, ok := b.FindBall()
	return ok && ball.R == GoalRow(b, player)
}

// WinningMoves lists the moves of player that leave the ball on player's goal row.
func WinningMoves(b *Board, player Player) []Transition {
	var retVal []Transition
	eachMove(b, player, func(t Transition) bool {
		if ballOnGoal(t.Board, player) {
			retVal = append(retVal, t)
		}
		return true
	})
	return retVal
}

// ImmediateWin returns the first winning move of player in generation order.
func ImmediateWin(b *Board, player Player) (retVal Transition, ok bool) {
	eachMove(b, player, func(t Transition) bool {
		if ballOnGoal(t.Board, player) {
			retVal, ok = t, true
			return false
		}
		return true
	})
	return
}

// HasWinningMove reports whether player can score this ply.
func HasWinningMove(b *Board, player Player) bool {
	_, ok := ImmediateWin(b, player)
	return ok
}

// FindBlockingMove returns the first move of player after which the opponent
// has no winning reply.
func FindBlockingMove(b *Board, player Player) (retVal Transition, ok bool) {
	opp := player.Opponent()
	eachMove(b, player, func(t Transition) bool {
		if !HasWinningMove(t.Board, opp) {
			retVal, ok = t, true
			return false
		}
		return true
	})
	return
}

// IsWinAvoidableByOpponent assumes player has a winning move on b. It reports
// whether the opponent had a blocking move in every position from which one
// of its moves could have produced b. No predecessors means the win was forced.
func IsWinAvoidableByOpponent(b *Board, player Player) bool {
	opp := player.Opponent()
	prevs := PossiblePreviousMoves(b, opp)
	if len(prevs) == 0 {
		return false
	}
	for _, prev := range prevs {
		if _, ok := FindBlockingMove(prev.Board, opp); !ok {
			return false
		}
	}
	return true
}

// Outcome reports whether the ball sits on a goal row and, if so, who scored.
func Outcome(b *Board) (ended bool, winner Player) {
	ball, ok := b.FindBall()
	if !ok {
		return false, Neutral
	}
	switch ball.R {
	case GoalRow(b, First):
		return true, First
	case GoalRow(b, Second):
		return true, Second
	}
	return false, Neutral
}

// ApplyMove plays the first legal move of player from one cell to another and
// returns the resulting transition. The error explains why nothing matched.
func ApplyMove(b *Board, player Player, from, to Coord) (Transition, error) {
	if !b.InBounds(from) || !b.InBounds(to) {
		return Transition{}, errors.Errorf("move %v->%v is off the %dx%d board", from, to, b.rows, b.cols)
	}
	p, ok := b.Get(from)
	if !ok {
		return Transition{}, errors.Errorf("no piece at %v", from)
	}
	if p.Owner != player {
		return Transition{}, errors.Errorf("piece %v at %v belongs to %v, not %v", p, from, p.Owner, player)
	}

	var found, movable bool
	var retVal Transition
	eachMove(b, player, func(t Transition) bool {
		if t.Move.From != from {
			return true
		}
		movable = true
		if t.Move.To == to {
			retVal, found = t, true
			return false
		}
		return true
	})
	switch {
	case found:
		return retVal, nil
	case !movable:
		return Transition{}, errors.Errorf("piece at %v has no legal moves", from)
	}
	return Transition{}, errors.Errorf("%v cannot reach %v", from, to)
}
