package common

// IsMoveLegal reports whether the piece on from may go to to by its own movement
// and capture pattern. Turn order, king safety and castling are not considered.
func (p *Position) IsMoveLegal(from, to int) bool {
	if !IsValidSquare(from) || !IsValidSquare(to) {
		return false
	}
	switch p.Board[from].Kind {
	case Pawn:
		return p.isLegalPawnMove(from, to)
	case Knight:
		return p.isLegalKnightMove(from, to)
	case Bishop:
		return p.isLegalBishopMove(from, to)
	case Rook:
		return p.isLegalRookMove(from, to)
	case Queen:
		return p.isLegalQueenMove(from, to)
	case King:
		return p.isLegalKingMove(from, to)
	}
	return false
}

// IsMoveValid is IsMoveLegal for a piece of the side to move,
// plus castling as a two-file king move from its home square.
func (p *Position) IsMoveValid(m Move) bool {
	var from, to = m.From(), m.To()
	var piece = p.Board[from]
	if piece.IsEmpty() || piece.Color != p.SideToMove {
		return false
	}
	if right, ok := p.castleRight(from, to); ok {
		return p.HasCastleRight(right) && p.canLand(from, to)
	}
	return p.IsMoveLegal(from, to)
}

// castleRight returns the right a king move from its home square two files along the rank would use.
func (p *Position) castleRight(from, to int) (int, bool) {
	var piece = p.Board[from]
	if piece.Kind != King {
		return 0, false
	}
	var home = let(piece.Color == White, SquareE1, SquareE8)
	if from != home || Row(to) != Row(from) {
		return 0, false
	}
	switch to - from {
	case 2:
		return let(piece.Color == White, WhiteKingSide, BlackKingSide), true
	case -2:
		return let(piece.Color == White, WhiteQueenSide, BlackQueenSide), true
	}
	return 0, false
}

func (p *Position) isEnemy(from, to int) bool {
	var target = p.Board[to]
	return !target.IsEmpty() && target.Color != p.Board[from].Color
}

func (p *Position) canLand(from, to int) bool {
	return p.Board[to].IsEmpty() || p.isEnemy(from, to)
}

// isPathClear checks the squares strictly between from and to along one line.
func (p *Position) isPathClear(from, to int) bool {
	var step = sign(Row(to)-Row(from))*8 + sign(File(to)-File(from))
	if step == 0 {
		return true
	}
	for sq := from + step; sq != to; sq += step {
		if !p.Board[sq].IsEmpty() {
			return false
		}
	}
	return true
}

func (p *Position) isLegalPawnMove(from, to int) bool {
	var pawn = p.Board[from]
	var direction = let(pawn.Color == White, -1, 1)
	var homeRow = let(pawn.Color == White, 6, 1)
	var rowDelta = Row(to) - Row(from)

	if File(from) == File(to) {
		if rowDelta == direction && p.Board[to].IsEmpty() {
			return true
		}
		if rowDelta == 2*direction && Row(from) == homeRow &&
			p.Board[from+8*direction].IsEmpty() && p.Board[to].IsEmpty() {
			return true
		}
		return false
	}
	if FileDistance(from, to) == 1 && rowDelta == direction {
		return p.isEnemy(from, to) || to == p.EpSquare
	}
	return false
}

func (p *Position) isLegalKnightMove(from, to int) bool {
	var rows, files = RowDistance(from, to), FileDistance(from, to)
	if (rows == 1 && files == 2) || (rows == 2 && files == 1) {
		return p.canLand(from, to)
	}
	return false
}

func (p *Position) isLegalBishopMove(from, to int) bool {
	if RowDistance(from, to) != FileDistance(from, to) {
		return false
	}
	return p.isPathClear(from, to) && p.canLand(from, to)
}

func (p *Position) isLegalRookMove(from, to int) bool {
	if Row(from) != Row(to) && File(from) != File(to) {
		return false
	}
	return p.isPathClear(from, to) && p.canLand(from, to)
}

func (p *Position) isLegalQueenMove(from, to int) bool {
	return p.isLegalRookMove(from, to) || p.isLegalBishopMove(from, to)
}

func (p *Position) isLegalKingMove(from, to int) bool {
	if SquareDistance(from, to) != 1 {
		return false
	}
	return p.canLand(from, to)
}
