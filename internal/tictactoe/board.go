package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/ai50-backend/internal/apperror"
	"github.com/rocketscienceinc/ai50-backend/internal/entity"
)

// Player - returns the mark that moves next. X always opens and the players alternate.
func Player(board entity.Board) string {
	if board.Count(entity.PlayerX) <= board.Count(entity.PlayerO) {
		return entity.PlayerX
	}
	return entity.PlayerO
}

// Actions - returns every empty cell in row-major order.
func Actions(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.BoardSize*entity.BoardSize)
	for i, row := range board {
		for j, cell := range row {
			if cell == entity.EmptyCell {
				moves = append(moves, entity.Move{Row: i, Col: j})
			}
		}
	}
	return moves
}

// Result - returns the board after the next player marks move. The input board is not modified.
func Result(board entity.Board, move entity.Move) (entity.Board, error) {
	if !move.InBounds() {
		return board, fmt.Errorf("%w: cell (%d, %d) is out of range", apperror.ErrInvalidMove, move.Row, move.Col)
	}

	if board.At(move) != entity.EmptyCell {
		return board, fmt.Errorf("%w: cell (%d, %d) is already occupied", apperror.ErrInvalidMove, move.Row, move.Col)
	}

	next := board
	next[move.Row][move.Col] = Player(board)

	return next, nil
}

// Winner - returns the mark holding a full line, or EmptyCell when nobody does.
func Winner(board entity.Board) string {
	for _, combo := range entity.WinCombos {
		a, b, c := board.At(combo[0]), board.At(combo[1]), board.At(combo[2])
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}
	return entity.EmptyCell
}

// Terminal - reports whether the game is over.
func Terminal(board entity.Board) bool {
	return Winner(board) != entity.EmptyCell || board.Count(entity.EmptyCell) == 0
}

// Utility - 1 if X has won, -1 if O has won, 0 otherwise.
func Utility(board entity.Board) int {
	switch Winner(board) {
	case entity.PlayerX:
		return 1
	case entity.PlayerO:
		return -1
	default:
		return 0
	}
}
