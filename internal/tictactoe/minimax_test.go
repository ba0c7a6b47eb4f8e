package tictactoe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ai50-backend/internal/entity"
)

func TestBestMove(t *testing.T) {
	t.Run("Empty board plays the opening move", func(t *testing.T) {
		move, ok := BestMove(entity.NewBoard())

		require.True(t, ok)
		assert.Equal(t, OpeningMove, move)
	})

	t.Run("X takes a win in one", func(t *testing.T) {
		// Given: X can complete the top row, O threatens the middle row
		board := entity.Board{{x, x, e}, {o, o, e}, {e, e, e}}

		// When: searching
		move, ok := BestMove(board)

		// Then: X should win immediately
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("X takes a win in one on a diagonal", func(t *testing.T) {
		board := entity.Board{{x, o, e}, {o, x, e}, {e, e, e}}

		move, ok := BestMove(board)

		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
	})

	t.Run("O takes a win in one", func(t *testing.T) {
		board := entity.Board{{x, x, e}, {o, o, e}, {x, e, e}}

		move, ok := BestMove(board)

		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
	})

	t.Run("O blocks a threat", func(t *testing.T) {
		// Given: X threatens the left column
		board := entity.Board{{x, e, e}, {x, o, e}, {e, e, e}}

		// When: searching for O
		move, ok := BestMove(board)

		// Then: O should block
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 2, Col: 0}, move)
	})

	t.Run("Full board returns no move", func(t *testing.T) {
		board := entity.Board{{x, o, x}, {x, o, o}, {o, x, x}}

		_, ok := BestMove(board)

		assert.False(t, ok)
	})

	t.Run("Won board returns no move", func(t *testing.T) {
		board := entity.Board{{x, x, x}, {o, o, e}, {e, e, e}}

		_, ok := BestMove(board)

		assert.False(t, ok)
	})

	t.Run("First child is kept when its value is a draw", func(t *testing.T) {
		// Given: a single empty cell that leads to a draw
		board := entity.Board{{x, o, x}, {x, o, o}, {o, x, e}}

		// When: searching
		move, ok := BestMove(board)

		// Then: the only action should be returned even though it scores 0
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
	})

	t.Run("Perfect play ends in a draw", func(t *testing.T) {
		board := entity.NewBoard()

		for !Terminal(board) {
			move, ok := BestMove(board)
			require.True(t, ok)

			var err error
			board, err = Result(board, move)
			require.NoError(t, err)
		}

		assert.Equal(t, 0, Utility(board))
	})

	t.Run("Optimal reply never loses against any opening", func(t *testing.T) {
		for _, opening := range Actions(entity.NewBoard()) {
			// Given: X opens anywhere and both sides then play optimally
			board, err := Result(entity.NewBoard(), opening)
			require.NoError(t, err)

			for !Terminal(board) {
				move, ok := BestMove(board)
				require.True(t, ok)

				board, err = Result(board, move)
				require.NoError(t, err)
			}

			// Then: every game should be drawn
			assert.Equal(t, 0, Utility(board), "opening %v", opening)
		}
	})
}

func TestMinimaxValue(t *testing.T) {
	t.Run("Terminal board returns its utility", func(t *testing.T) {
		board := entity.Board{{o, o, o}, {x, x, e}, {x, e, e}}

		assert.InDelta(t, -1.0, minimaxValue(board, 0), 0)
	})

	t.Run("Win in one is valued for X", func(t *testing.T) {
		board := entity.Board{{x, x, e}, {o, o, e}, {e, e, e}}

		assert.InDelta(t, 1.0, minimaxValue(board, math.Inf(1)), 0)
	})

	t.Run("Centre against a corner is a draw", func(t *testing.T) {
		board := entity.Board{{o, e, e}, {e, x, e}, {e, e, e}}

		assert.InDelta(t, 0.0, minimaxValue(board, math.Inf(1)), 0)
	})

	t.Run("Returns early once the bound is beaten", func(t *testing.T) {
		// Given: X to move with a winning reply, and a caller that already has 0
		board := entity.Board{{x, x, e}, {o, o, e}, {e, e, e}}

		// When: valuing with a bound of 0
		value := minimaxValue(board, 0)

		// Then: the value should exceed the bound
		assert.Greater(t, value, 0.0)
	})
}

// exactValue is plain minimax without any cutoff, memoized in memo.
func exactValue(board entity.Board, memo map[entity.Board]int) int {
	if v, ok := memo[board]; ok {
		return v
	}

	if Terminal(board) {
		return Utility(board)
	}

	maximizing := Player(board) == entity.PlayerX
	best := 2
	if maximizing {
		best = -2
	}

	for _, action := range Actions(board) {
		next, _ := Result(board, action)
		value := exactValue(next, memo)
		if (maximizing && value > best) || (!maximizing && value < best) {
			best = value
		}
	}

	memo[board] = best
	return best
}

func TestBestMove_OptimalOnEveryReachableBoard(t *testing.T) {
	// Given: every non-terminal board reachable from the empty board
	seen := make(map[entity.Board]struct{})
	queue := []entity.Board{entity.NewBoard()}

	for len(queue) > 0 {
		board := queue[0]
		queue = queue[1:]

		if _, ok := seen[board]; ok || Terminal(board) {
			continue
		}
		seen[board] = struct{}{}

		for _, action := range Actions(board) {
			next, err := Result(board, action)
			require.NoError(t, err)
			queue = append(queue, next)
		}
	}

	require.Len(t, seen, 4520)

	memo := make(map[entity.Board]int, len(seen))

	for board := range seen {
		// When: searching with cutoffs
		move, ok := BestMove(board)
		require.True(t, ok)

		next, err := Result(board, move)
		require.NoError(t, err)

		// Then: the chosen move keeps the exact minimax value of the board
		assert.Equal(t, exactValue(board, memo), exactValue(next, memo), "board %v move %v", board, move)
	}
}
