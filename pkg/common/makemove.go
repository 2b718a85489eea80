package common

// MakeMove applies m without checking it. The previous state is pushed onto
// the history first, so UndoMove always gets back the exact record.
func (p *Position) MakeMove(m Move) {
	var from, to = m.From(), m.To()

	p.history = append(p.history, p.Snapshot)

	var movingPiece = p.Board[from]
	var capturedPiece = p.Board[to]

	if movingPiece.Kind == Pawn && (Row(to) == 0 || Row(to) == 7) {
		p.Board[to] = Piece{Kind: Queen, Color: movingPiece.Color}
	} else {
		p.Board[to] = movingPiece
	}
	p.Board[from] = Piece{}

	if movingPiece.Kind == Pawn && to == p.EpSquare {
		var behind = to + let(movingPiece.Color == White, 8, -8)
		if IsValidSquare(behind) {
			p.Board[behind] = Piece{}
		}
	}

	if movingPiece.Kind == Pawn && AbsDelta(from, to) == 16 {
		p.EpSquare = (from + to) / 2
	} else {
		p.EpSquare = SquareNone
	}

	if movingPiece.Kind == King && Row(from) == Row(to) && FileDistance(from, to) == 2 {
		if to > from {
			p.moveCastlingRook(to+1, to-1)
		} else {
			p.moveCastlingRook(to-2, to+1)
		}
	}

	p.updateCastleRights(movingPiece, from, to)

	p.SideToMove = p.SideToMove.Opposite()
	if movingPiece.Kind == Pawn || !capturedPiece.IsEmpty() {
		p.Rule50 = 0
	} else {
		p.Rule50++
	}
	if p.SideToMove == White {
		p.FullMove++
	}
}

func (p *Position) moveCastlingRook(from, to int) {
	if !IsValidSquare(from) || Row(from) != Row(to) {
		return
	}
	p.Board[to] = p.Board[from]
	p.Board[from] = Piece{}
}

// updateCastleRights clears at most one corner right for a rook move or a move onto a corner.
func (p *Position) updateCastleRights(movingPiece Piece, from, to int) {
	if movingPiece.Kind == King {
		if movingPiece.Color == White {
			p.CastleRights &^= WhiteKingSide | WhiteQueenSide
		} else {
			p.CastleRights &^= BlackKingSide | BlackQueenSide
		}
		return
	}
	if movingPiece.Kind != Rook && !isCorner(to) {
		return
	}
	if from == SquareA8 || to == SquareA8 {
		p.CastleRights &^= BlackQueenSide
	} else if from == SquareH8 || to == SquareH8 {
		p.CastleRights &^= BlackKingSide
	} else if from == SquareA1 || to == SquareA1 {
		p.CastleRights &^= WhiteQueenSide
	} else if from == SquareH1 || to == SquareH1 {
		p.CastleRights &^= WhiteKingSide
	}
}

func isCorner(sq int) bool {
	return sq == SquareA8 || sq == SquareH8 || sq == SquareA1 || sq == SquareH1
}
