package eval

import "github.com/chessball/game"

// AdjacentPushers counts directions in which a piece of player stands next to
// the ball and could push it this ply.
func AdjacentPushers(b *game.Board, player game.Player) int {
	ball, ok := b.FindBall()
	if !ok {
		return 0
	}
	var n int
	for _, d := range game.Directions {
		pusher, dest := ball.Sub(d), ball.Add(d)
		if !b.InBounds(pusher) || !b.Empty(dest) || b.IsForbiddenCol(dest.C) {
			continue
		}
		if p, ok := b.Get(pusher); ok && p.Owner == player {
			n++
		}
	}
	return n
}

// ControlAroundBall counts friendly and enemy pieces on the 8 cells around the ball.
func ControlAroundBall(b *game.Board, player game.Player) (friendly, enemy int) {
	ball, ok := b.FindBall()
	if !ok {
		return 0, 0
	}
	for _, d := range game.Directions {
		c := ball.Add(d)
		if !b.InBounds(c) {
			continue
		}
		p, ok := b.Get(c)
		switch {
		case !ok || p.Kind == game.Ball:
		case p.Owner == player:
			friendly++
		default:
			enemy++
		}
	}
	return
}

// VulnerablePieces counts pieces of player that an opposing defender could
// tackle right now. Each piece counts once however many tacklers it has.
func VulnerablePieces(b *game.Board, player game.Player) int {
	opp := player.Opponent()
	var n int
	for _, c := range b.Coords() {
		p, ok := b.Get(c)
		if !ok || p.Owner != player || p.Kind == game.Ball {
			continue
		}
		for _, d := range game.Directions {
			tackler, dest := c.Add(d), c.Sub(d)
			if !b.InBounds(tackler) || !b.Empty(dest) {
				continue
			}
			if q, _ := b.Get(tackler); q.Kind == game.Defender && q.Owner == opp {
				n++
				break
			}
		}
	}
	return n
}

// ApproxPushDistance estimates how close the ball is to player's goal, 1
// meaning on it. A friendly piece right behind the ball with a free cell in
// front of it is worth half a row.
func ApproxPushDistance(b *game.Board, player game.Player) float64 {
	ball, ok := b.FindBall()
	if !ok {
		return 0
	}
	span := maxDist(b)
	if span == 0 {
		return 1
	}
	dist := float64(goalDist(b, player, ball))

	var bonus float64
	fwd := forward(player)
	behind, dest := ball.Sub(fwd), ball.Add(fwd)
	if b.InBounds(behind) {
		if p, ok := b.Get(behind); ok && p.Owner == player && b.Empty(dest) && !b.IsForbiddenCol(dest.C) {
			bonus = 0.5
		}
	}
	eff := dist - bonus
	if eff < 0 {
		eff = 0
	}
	norm := 1 - eff/span
	if norm < 0 {
		return 0
	}
	return norm
}

// BallRowFor is the ball's row scaled to [0,1] and oriented so that 1 is
// player's goal row. It is -1 when the board has no ball.
func BallRowFor(b *game.Board, player game.Player) float64 {
	ball, ok := b.FindBall()
	if !ok {
		return -1
	}
	span := maxDist(b)
	if span == 0 {
		return 1
	}
	if player == game.Second {
		return (span - float64(ball.R)) / span
	}
	return float64(ball.R) / span
}

// OpponentsBetweenBallAndGoal counts opposing pieces on rows strictly between
// the ball and player's goal row.
func OpponentsBetweenBallAndGoal(b *game.Board, player game.Player) int {
	ball, ok := b.FindBall()
	if !ok || player == game.Neutral {
		return 0
	}
	lo, hi := ball.R, game.GoalRow(b, player)
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo <= 1 {
		return 0
	}
	opp := player.Opponent()
	var n int
	for _, c := range b.Coords() {
		if c.R <= lo || c.R >= hi {
			continue
		}
		if p, ok := b.Get(c); ok && p.Owner == opp && p.Kind != game.Ball {
			n++
		}
	}
	return n
}
