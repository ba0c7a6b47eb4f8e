package entity

import "strings"

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 3
)

// Board - 3x3 grid of marks. It is a value type, so assigning or passing a
// board copies it.
type Board [BoardSize][BoardSize]string

// Move - a (row, column) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WinCombos - every line that wins the game: 3 rows, 3 columns and 2 diagonals.
var WinCombos = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func NewBoard() Board {
	return Board{}
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that *Board) At(move Move) string {
	return that[move.Row][move.Col]
}

func (that *Board) IsEmpty() bool {
	return *that == Board{}
}

// Count returns the number of cells holding mark.
func (that *Board) Count(mark string) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}
	return count
}

func (that *Board) String() string {
	var sb strings.Builder

	for i, row := range that {
		if i > 0 {
			sb.WriteString("---+---+---\n")
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte('|')
			}
			if cell == EmptyCell {
				cell = " "
			}
			sb.WriteString(" " + cell + " ")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// OtherMark returns the opponent of mark.
func OtherMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
