package common

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const SquareNone = -1

// Squares are numbered row by row from the eighth rank down,
// so a8 is 0 and h1 is 63.
const (
	SquareA8 = iota
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8
	SquareA7
	SquareB7
	SquareC7
	SquareD7
	SquareE7
	SquareF7
	SquareG7
	SquareH7
	SquareA6
	SquareB6
	SquareC6
	SquareD6
	SquareE6
	SquareF6
	SquareG6
	SquareH6
	SquareA5
	SquareB5
	SquareC5
	SquareD5
	SquareE5
	SquareF5
	SquareG5
	SquareH5
	SquareA4
	SquareB4
	SquareC4
	SquareD4
	SquareE4
	SquareF4
	SquareG4
	SquareH4
	SquareA3
	SquareB3
	SquareC3
	SquareD3
	SquareE3
	SquareF3
	SquareG3
	SquareH3
	SquareA2
	SquareB2
	SquareC2
	SquareD2
	SquareE2
	SquareF2
	SquareG2
	SquareH2
	SquareA1
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
)

func File(sq int) int {
	return sq & 7
}

// Row is the board row counted from the top, 0 for the eighth rank.
func Row(sq int) int {
	return sq >> 3
}

func Rank(sq int) int {
	return Rank8 - Row(sq)
}

func IsValidSquare(sq int) bool {
	return sq >= 0 && sq < 64
}

func AbsDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

func FileDistance(sq1, sq2 int) int {
	return AbsDelta(File(sq1), File(sq2))
}

func RowDistance(sq1, sq2 int) int {
	return AbsDelta(Row(sq1), Row(sq2))
}

func SquareDistance(sq1, sq2 int) int {
	return Max(FileDistance(sq1, sq2), RowDistance(sq1, sq2))
}

func MakeSquare(file, rank int) int {
	return (Rank8-rank)<<3 | file
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func SquareName(sq int) string {
	if !IsValidSquare(sq) {
		return "-"
	}
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}

// ParseSquare converts a coordinate such as "e4" to a square index.
// It returns SquareNone for anything that is not a file a-h followed by a rank 1-8.
func ParseSquare(s string) int {
	if len(s) != 2 {
		return SquareNone
	}
	var file = int(toLowerASCII(s[0])) - 'a'
	var rank = int(s[1]) - '1'
	if file < FileA || file > FileH || rank < Rank1 || rank > Rank8 {
		return SquareNone
	}
	return MakeSquare(file, rank)
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
