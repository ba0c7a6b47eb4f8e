package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/ai50-backend/internal/entity"
)

// OpeningMove is played on an empty board without searching.
var OpeningMove = entity.Move{Row: 0, Col: 1}

// BestMove - returns the optimal move for the player to move, ok is false when
// the board is terminal.
func BestMove(board entity.Board) (move entity.Move, ok bool) {
	if Terminal(board) {
		return entity.Move{}, false
	}

	if board.IsEmpty() {
		return OpeningMove, true
	}

	current := Player(board)
	actions := Actions(board)

	// an immediate win is always optimal, take it instead of a slower forced win
	for _, action := range actions {
		if next, err := Result(board, action); err == nil && Winner(next) == current {
			return action, true
		}
	}

	best := math.Inf(-1)
	if current == entity.PlayerO {
		best = math.Inf(1)
	}

	for _, action := range actions {
		next, err := Result(board, action)
		if err != nil {
			continue
		}

		value := minimaxValue(next, best)

		// keep the first action reaching a value, ties do not replace it
		if (current == entity.PlayerX && value > best) || (current == entity.PlayerO && value < best) {
			best = value
			move, ok = action, true
		}
	}

	return move, ok
}

// minimaxValue returns the value of board under optimal play. bound is the best
// value the caller already has; once a reply proves this branch will not be
// chosen the search returns early.
func minimaxValue(board entity.Board, bound float64) float64 {
	if Terminal(board) {
		return float64(Utility(board))
	}

	maximizing := Player(board) == entity.PlayerX

	value := math.Inf(1)
	if maximizing {
		value = math.Inf(-1)
	}

	for _, action := range Actions(board) {
		next, err := Result(board, action)
		if err != nil {
			continue
		}

		childValue := minimaxValue(next, value)

		if maximizing {
			if childValue > bound {
				return childValue
			}
			value = math.Max(value, childValue)
		} else {
			if childValue < bound {
				return childValue
			}
			value = math.Min(value, childValue)
		}
	}

	return value
}
