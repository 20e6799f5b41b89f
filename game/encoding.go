package game

// Planes is the number of rows*cols layers InputEncoder emits.
const Planes = 6

// InputEncoder encodes a board to a flat float32 input. Planes, in order:
// First attackers, First defenders, Second attackers, Second defenders, the
// ball, and a constant layer holding 1 when First is to move and 0 otherwise.
func InputEncoder(b *Board, toMove Player) []float32 {
	n := b.rows * b.cols
	retVal := make([]float32, Planes*n)
	for i, p := range b.cells {
		var plane int
		switch {
		case p.Kind == Ball:
			plane = 4
		case p.Kind == Attacker && p.Owner == First:
			plane = 0
		case p.Kind == Defender && p.Owner == First:
			plane = 1
		case p.Kind == Attacker && p.Owner == Second:
			plane = 2
		case p.Kind == Defender && p.Owner == Second:
			plane = 3
		default:
			continue
		}
		retVal[plane*n+i] = 1
	}

	if toMove == First {
		playerLayer := retVal[5*n:]
		for i := range playerLayer {
			playerLayer[i] = 1
		}
	}
	return retVal
}
