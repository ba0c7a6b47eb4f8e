package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard_Count(t *testing.T) {
	// Given: a board with two X and one O
	board := Board{
		{PlayerX, PlayerO, EmptyCell},
		{EmptyCell, PlayerX, EmptyCell},
		{EmptyCell, EmptyCell, EmptyCell},
	}

	// Then: marks should be counted per player
	assert.Equal(t, 2, board.Count(PlayerX))
	assert.Equal(t, 1, board.Count(PlayerO))
	assert.Equal(t, 6, board.Count(EmptyCell))
}

func TestBoard_IsEmpty(t *testing.T) {
	board := NewBoard()
	assert.True(t, board.IsEmpty())

	board[1][1] = PlayerX
	assert.False(t, board.IsEmpty())
}

func TestBoard_String(t *testing.T) {
	board := Board{
		{PlayerX, EmptyCell, EmptyCell},
		{EmptyCell, PlayerO, EmptyCell},
		{EmptyCell, EmptyCell, PlayerX},
	}

	expected := " X |   |   \n---+---+---\n   | O |   \n---+---+---\n   |   | X \n"

	assert.Equal(t, expected, board.String())
}

func TestMove_InBounds(t *testing.T) {
	assert.True(t, Move{Row: 0, Col: 0}.InBounds())
	assert.True(t, Move{Row: 2, Col: 2}.InBounds())
	assert.False(t, Move{Row: 3, Col: 0}.InBounds())
	assert.False(t, Move{Row: 0, Col: -1}.InBounds())
}

func TestOtherMark(t *testing.T) {
	assert.Equal(t, PlayerO, OtherMark(PlayerX))
	assert.Equal(t, PlayerX, OtherMark(PlayerO))
}
