package common

// GenerateMoves lists the valid moves of the side to move,
// ordered by source square and then by target square.
func GenerateMoves(p *Position) []Move {
	var ml []Move
	for from, piece := range p.Board {
		if piece.IsEmpty() || piece.Color != p.SideToMove {
			continue
		}
		for to := 0; to < len(p.Board); to++ {
			if to == from {
				continue
			}
			var m = NewMove(from, to)
			if p.IsMoveValid(m) {
				ml = append(ml, m)
			}
		}
	}
	return ml
}
