package common

type Move int32

const MoveEmpty = Move(0)

func NewMove(from, to int) Move {
	return Move(from ^ (to << 6))
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	return SquareName(m.From()) + SquareName(m.To())
}

// ParseMove reads a move in long algebraic notation, e.g. "e2e4".
// Anything after the two squares, such as a promotion letter, is ignored:
// pawns always promote to a queen.
func ParseMove(lan string) (Move, bool) {
	if len(lan) < 4 {
		return MoveEmpty, false
	}
	var from = ParseSquare(lan[0:2])
	var to = ParseSquare(lan[2:4])
	if from == SquareNone || to == SquareNone {
		return MoveEmpty, false
	}
	return NewMove(from, to), true
}

func (p *Position) IsMoveValidLAN(lan string) bool {
	var m, ok = ParseMove(lan)
	return ok && p.IsMoveValid(m)
}

// ApplyMoveLAN parses and applies a move without checking it.
func (p *Position) ApplyMoveLAN(lan string) MoveResult {
	var m, ok = ParseMove(lan)
	if !ok {
		return MoveUnparseable
	}
	p.MakeMove(m)
	return MoveApplied
}

// MakeMoveLAN applies a move only if it is valid for the side to move.
func (p *Position) MakeMoveLAN(lan string) MoveResult {
	var m, ok = ParseMove(lan)
	if !ok {
		return MoveUnparseable
	}
	if !p.IsMoveValid(m) {
		return MoveIllegal
	}
	p.MakeMove(m)
	return MoveApplied
}
