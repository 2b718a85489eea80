package common

import (
	"fmt"
	"strconv"
	s "strings"
)

type Position struct {
	Snapshot
	FullMove int
	history  []Snapshot
}

func NewPosition() *Position {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFromFEN loads a six-field position description.
// Piece counts and king presence are not validated.
func NewPositionFromFEN(fen string) (*Position, error) {
	var tokens = s.Fields(fen)
	if len(tokens) < 6 {
		return nil, fmt.Errorf("%w: fen needs 6 fields %q", ErrParse, fen)
	}

	var p = &Position{}

	var i = 0
	for _, ch := range tokens[0] {
		if ch == '/' {
			continue
		}
		if ch >= '0' && ch <= '9' {
			i += int(ch - '0')
			continue
		}
		var piece, ok = parsePiece(ch)
		if !ok {
			return nil, fmt.Errorf("%w: bad piece %q in fen %q", ErrParse, ch, fen)
		}
		if i >= len(p.Board) {
			return nil, fmt.Errorf("%w: too many squares in fen %q", ErrParse, fen)
		}
		p.Board[i] = piece
		i++
	}
	if i > len(p.Board) {
		return nil, fmt.Errorf("%w: too many squares in fen %q", ErrParse, fen)
	}

	if tokens[1] == "w" {
		p.SideToMove = White
	} else {
		p.SideToMove = Black
	}

	var sCastleRights = tokens[2]
	if s.Contains(sCastleRights, "K") {
		p.CastleRights |= WhiteKingSide
	}
	if s.Contains(sCastleRights, "Q") {
		p.CastleRights |= WhiteQueenSide
	}
	if s.Contains(sCastleRights, "k") {
		p.CastleRights |= BlackKingSide
	}
	if s.Contains(sCastleRights, "q") {
		p.CastleRights |= BlackQueenSide
	}

	p.EpSquare = ParseSquare(tokens[3])

	var err error
	p.Rule50, err = strconv.Atoi(tokens[4])
	if err != nil {
		return nil, fmt.Errorf("%w: halfmove clock %q: %v", ErrParse, tokens[4], err)
	}
	p.FullMove, err = strconv.Atoi(tokens[5])
	if err != nil {
		return nil, fmt.Errorf("%w: fullmove number %q: %v", ErrParse, tokens[5], err)
	}
	return p, nil
}

// String returns the position in FEN.
func (p *Position) String() string {
	var sb s.Builder

	var emptyCount = 0
	for sq, piece := range p.Board {
		if piece.IsEmpty() {
			emptyCount++
		} else {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteString(piece.String())
		}

		if File(sq) == FileH {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			if Rank(sq) != Rank1 {
				sb.WriteString("/")
			}
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.SideToMove.String())
	sb.WriteString(" ")

	if p.CastleRights == 0 {
		sb.WriteString("-")
	} else {
		if (p.CastleRights & WhiteKingSide) != 0 {
			sb.WriteString("K")
		}
		if (p.CastleRights & WhiteQueenSide) != 0 {
			sb.WriteString("Q")
		}
		if (p.CastleRights & BlackKingSide) != 0 {
			sb.WriteString("k")
		}
		if (p.CastleRights & BlackQueenSide) != 0 {
			sb.WriteString("q")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(SquareName(p.EpSquare))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.Rule50))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.FullMove))

	return sb.String()
}

// Dump renders the board as eight rows of space separated pieces followed by a blank line.
func (p *Position) Dump() string {
	var sb s.Builder
	for sq, piece := range p.Board {
		sb.WriteString(piece.String())
		if File(sq) == FileH {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func (p *Position) HistoryLen() int {
	return len(p.history)
}

// UndoMove restores the snapshot taken before the last move.
// The fullmove number is left as is.
func (p *Position) UndoMove() bool {
	if len(p.history) == 0 {
		return false
	}
	var last = len(p.history) - 1
	p.Snapshot = p.history[last]
	p.history = p.history[:last]
	return true
}

func (p *Position) HasCastleRight(right int) bool {
	return p.CastleRights&right != 0
}
