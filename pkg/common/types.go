package common

import (
	"errors"
	"time"
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrParse is returned for malformed position notation.
var ErrParse = errors.New("parse error")

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

type PieceKind int

const (
	Empty PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const pieceNames = "pnbrqk"

type Piece struct {
	Kind  PieceKind
	Color Color
}

func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

func (p Piece) String() string {
	if p.Kind == Empty {
		return "."
	}
	var ch = pieceNames[p.Kind-Pawn]
	if p.Color == White {
		ch = toUpperASCII(ch)
	}
	return string(ch)
}

func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

// Snapshot holds every field of a position that a move can change and undo can restore.
// The fullmove number is not part of it.
type Snapshot struct {
	Board        [64]Piece
	SideToMove   Color
	CastleRights int
	EpSquare     int
	Rule50       int
}

func (s *Snapshot) Piece(sq int) Piece {
	return s.Board[sq]
}

// MoveResult tells a caller what happened to a move token.
type MoveResult int

const (
	MoveApplied MoveResult = iota
	MoveIllegal
	MoveUnparseable
)

func (r MoveResult) String() string {
	switch r {
	case MoveApplied:
		return "applied"
	case MoveIllegal:
		return "skipped illegal"
	case MoveUnparseable:
		return "skipped unparseable"
	}
	return "unknown"
}

type SearchParams struct {
	Position *Position
}

type SearchInfo struct {
	Nodes    int64
	Time     time.Duration
	MainLine []Move
}
