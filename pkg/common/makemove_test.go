package common

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustPosition(t *testing.T, fen string) *Position {
	t.Helper()
	var p, err = NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func mustMakeMoves(t *testing.T, p *Position, moves ...string) {
	t.Helper()
	for _, lan := range moves {
		if res := p.MakeMoveLAN(lan); res != MoveApplied {
			t.Fatal(lan, res)
		}
	}
}

func TestPawnDoubleStepSetsEpSquare(t *testing.T) {
	var p = NewPosition()
	mustMakeMoves(t, p, "e2e4")
	if p.EpSquare != SquareE3 {
		t.Error(SquareName(p.EpSquare))
	}
	mustMakeMoves(t, p, "g8f6")
	if p.EpSquare != SquareNone {
		t.Error(SquareName(p.EpSquare))
	}
	mustMakeMoves(t, p, "d2d3")
	if p.EpSquare != SquareNone {
		t.Error(SquareName(p.EpSquare))
	}
	mustMakeMoves(t, p, "c7c5")
	if p.EpSquare != SquareC6 {
		t.Error(SquareName(p.EpSquare))
	}
}

func TestEnPassantCapture(t *testing.T) {
	var p = NewPosition()
	mustMakeMoves(t, p, "e2e4", "a7a6", "e4e5", "d7d5")
	if p.EpSquare != SquareD6 {
		t.Fatal(SquareName(p.EpSquare))
	}
	if !p.IsMoveValidLAN("e5d6") {
		t.Fatal("e5d6 must be valid")
	}
	mustMakeMoves(t, p, "e5d6")
	if got := p.Piece(SquareD6); got != (Piece{Pawn, White}) {
		t.Error("d6", got)
	}
	if got := p.Piece(SquareD5); !got.IsEmpty() {
		t.Error("d5", got)
	}
	if got := p.Piece(SquareE5); !got.IsEmpty() {
		t.Error("e5", got)
	}
	if p.EpSquare != SquareNone || p.Rule50 != 0 {
		t.Error(p.EpSquare, p.Rule50)
	}
}

func TestBlackEnPassantCapture(t *testing.T) {
	var p = mustPosition(t, "4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	mustMakeMoves(t, p, "e2e4", "d4e3")
	if got := p.Piece(SquareE3); got != (Piece{Pawn, Black}) {
		t.Error("e3", got)
	}
	if got := p.Piece(SquareE4); !got.IsEmpty() {
		t.Error("e4", got)
	}
}

func TestCastling(t *testing.T) {
	var tests = []struct {
		fen    string
		move   string
		king   int
		rook   int
		empty  []int
		rights int
	}{
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", SquareG1, SquareF1,
			[]int{SquareE1, SquareH1}, BlackKingSide | BlackQueenSide},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", SquareC1, SquareD1,
			[]int{SquareE1, SquareA1, SquareB1}, BlackKingSide | BlackQueenSide},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", SquareG8, SquareF8,
			[]int{SquareE8, SquareH8}, WhiteKingSide | WhiteQueenSide},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", SquareC8, SquareD8,
			[]int{SquareE8, SquareA8, SquareB8}, WhiteKingSide | WhiteQueenSide},
	}
	for i, test := range tests {
		var p = mustPosition(t, test.fen)
		var color = p.SideToMove
		if res := p.MakeMoveLAN(test.move); res != MoveApplied {
			t.Fatal(i, test.move, res)
		}
		if got := p.Piece(test.king); got != (Piece{King, color}) {
			t.Error(i, "king", got)
		}
		if got := p.Piece(test.rook); got != (Piece{Rook, color}) {
			t.Error(i, "rook", got)
		}
		for _, sq := range test.empty {
			if !p.Piece(sq).IsEmpty() {
				t.Error(i, "not empty", SquareName(sq))
			}
		}
		if p.CastleRights != test.rights {
			t.Error(i, "rights", p.CastleRights)
		}
	}
}

func TestCastlingAfterRookMoved(t *testing.T) {
	var p = mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mustMakeMoves(t, p, "h1h2", "a8b8", "h2h1", "b8a8")
	if p.CastleRights != WhiteQueenSide|BlackKingSide {
		t.Fatal(p.CastleRights)
	}
	if p.IsMoveLegal(SquareE1, SquareG1) {
		t.Error("two-file king move is never legal by geometry")
	}
	if res := p.MakeMoveLAN("e1g1"); res != MoveIllegal {
		t.Error("e1g1", res)
	}
	if res := p.MakeMoveLAN("e1c1"); res != MoveApplied {
		t.Error("e1c1", res)
	}
}

func TestCastleRightsUpdate(t *testing.T) {
	const all = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	var tests = []struct {
		fen  string
		move string
		want int
	}{
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1e2", BlackKingSide | BlackQueenSide},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1a2", all &^ WhiteQueenSide},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "h1h2", all &^ WhiteKingSide},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "h8h7", all &^ BlackKingSide},
		// only the first matching corner is cleared
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1a8", all &^ BlackQueenSide},
		{"r3k2r/8/8/8/8/8/1B6/R3K2R w KQkq - 0 1", "b2h8", all &^ BlackKingSide},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1b1", all &^ WhiteQueenSide},
	}
	for i, test := range tests {
		var p = mustPosition(t, test.fen)
		mustMakeMoves(t, p, test.move)
		if p.CastleRights != test.want {
			t.Error(i, test, p.CastleRights)
		}
	}
}

func TestPromotion(t *testing.T) {
	var tests = []struct {
		fen  string
		move string
		sq   int
		want Piece
	}{
		{"8/P7/8/8/8/8/8/k6K w - - 0 1", "a7a8", SquareA8, Piece{Queen, White}},
		{"8/P7/8/8/8/8/8/k6K w - - 0 1", "a7a8q", SquareA8, Piece{Queen, White}},
		{"8/P7/8/8/8/8/8/k6K w - - 0 1", "a7a8n", SquareA8, Piece{Queen, White}},
		{"8/P7/8/8/8/8/8/k6K w - - 0 1", "a7a8qq", SquareA8, Piece{Queen, White}},
		{"1r6/P7/8/8/8/8/8/k6K w - - 0 1", "a7b8r", SquareB8, Piece{Queen, White}},
		{"K6k/8/8/8/8/8/p7/8 b - - 0 1", "a2a1", SquareA1, Piece{Queen, Black}},
	}
	for i, test := range tests {
		var p = mustPosition(t, test.fen)
		mustMakeMoves(t, p, test.move)
		if got := p.Piece(test.sq); got != test.want {
			t.Error(i, test, got)
		}
	}
}

func TestClocks(t *testing.T) {
	var p = NewPosition()
	mustMakeMoves(t, p, "g1f3")
	if p.Rule50 != 1 || p.FullMove != 1 || p.SideToMove != Black {
		t.Error(p.Rule50, p.FullMove, p.SideToMove)
	}
	mustMakeMoves(t, p, "g8f6")
	if p.Rule50 != 2 || p.FullMove != 2 || p.SideToMove != White {
		t.Error(p.Rule50, p.FullMove, p.SideToMove)
	}
	mustMakeMoves(t, p, "e2e4")
	if p.Rule50 != 0 {
		t.Error(p.Rule50)
	}
	mustMakeMoves(t, p, "f6e4")
	if p.Rule50 != 0 || p.FullMove != 3 {
		t.Error(p.Rule50, p.FullMove)
	}
}

func TestUndoMove(t *testing.T) {
	var p = NewPosition()
	if p.UndoMove() {
		t.Fatal("undo on empty history")
	}
	var start = p.Snapshot
	mustMakeMoves(t, p, "g1f3")
	var afterWhite = p.Snapshot
	mustMakeMoves(t, p, "g8f6")
	if p.HistoryLen() != 2 {
		t.Fatal(p.HistoryLen())
	}

	if !p.UndoMove() {
		t.Fatal("undo")
	}
	if diff := cmp.Diff(afterWhite, p.Snapshot); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	// the fullmove number is not part of the snapshot
	if p.FullMove != 2 {
		t.Error(p.FullMove)
	}

	p.UndoMove()
	if diff := cmp.Diff(start, p.Snapshot); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if p.HistoryLen() != 0 {
		t.Error(p.HistoryLen())
	}
}

func TestMakeUndoRoundTrip(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 10",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"1r5k/P7/8/8/8/8/6p1/K4N2 w - - 5 40",
		"1r5k/P7/8/8/8/8/6p1/K4N2 b - - 5 40",
	}
	for _, fen := range fens {
		var p = mustPosition(t, fen)
		for _, m := range GenerateMoves(p) {
			var before = p.Snapshot
			p.MakeMove(m)
			if !p.UndoMove() {
				t.Fatal(fen, m)
			}
			if diff := cmp.Diff(before, p.Snapshot); diff != "" {
				t.Errorf("%v %v mismatch (-want +got):\n%s", fen, m, diff)
			}
		}
	}
}

func TestApplyMoveLAN(t *testing.T) {
	var p = NewPosition()
	var before = p.Snapshot
	for _, lan := range []string{"", "e2", "e2e", "z2e4", "e2e9", "e0e4"} {
		if res := p.ApplyMoveLAN(lan); res != MoveUnparseable {
			t.Error(lan, res)
		}
	}
	if diff := cmp.Diff(before, p.Snapshot); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if p.HistoryLen() != 0 {
		t.Error(p.HistoryLen())
	}

	// no legality check here: black's pawn moves although white is to move
	if res := p.ApplyMoveLAN("e7e5"); res != MoveApplied {
		t.Error(res)
	}
	if p.Piece(SquareE5) != (Piece{Pawn, Black}) || p.SideToMove != Black {
		t.Error(p.String())
	}
}

func TestMakeMoveLAN(t *testing.T) {
	var tests = []struct {
		move string
		want MoveResult
	}{
		{"e2e4", MoveApplied},
		{"e2e4", MoveIllegal},
		{"e7e4", MoveIllegal},
		{"e7", MoveUnparseable},
		{"e7e5", MoveApplied},
		{"g1g3", MoveIllegal},
		{"g1f3", MoveApplied},
	}
	var p = NewPosition()
	for i, test := range tests {
		var before = p.HistoryLen()
		var res = p.MakeMoveLAN(test.move)
		if res != test.want {
			t.Error(i, test, res)
		}
		var pushed = p.HistoryLen() - before
		if (res == MoveApplied) != (pushed == 1) {
			t.Error(i, test, pushed)
		}
	}
	if got := p.String(); got != "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2" {
		t.Error(got)
	}
}
