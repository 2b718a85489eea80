package common

import "strings"

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

func let(ok bool, yes, no int) int {
	if ok {
		return yes
	}
	return no
}

func sign(x int) int {
	return let(x > 0, 1, let(x < 0, -1, 0))
}

func parsePiece(ch rune) (Piece, bool) {
	if ch >= 0x80 {
		return Piece{}, false
	}
	var color = let(ch >= 'A' && ch <= 'Z', int(White), int(Black))
	var i = strings.IndexByte(pieceNames, toLowerASCII(byte(ch)))
	if i < 0 {
		return Piece{}, false
	}
	return Piece{Kind: PieceKind(i + int(Pawn)), Color: Color(color)}, true
}
