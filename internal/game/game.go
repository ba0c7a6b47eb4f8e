package game

import (
	"fmt"

	"github.com/rocketscienceinc/ai50-backend/internal/apperror"
	"github.com/rocketscienceinc/ai50-backend/internal/entity"
	"github.com/rocketscienceinc/ai50-backend/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

// Game represents the state of one match: the board, whose turn it is and the result.
type Game struct {
	Board  entity.Board `json:"board"`
	Turn   string       `json:"turn"`
	Winner string       `json:"winner"`
	Status string       `json:"status"`
}

func NewGame() *Game {
	return &Game{
		Board:  entity.NewBoard(),
		Turn:   entity.PlayerX,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// MakeMove - places mark on the board if it is that player's turn.
func (that *Game) MakeMove(mark string, move entity.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := tictactoe.Result(that.Board, move)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = board
	that.updateGameState()

	return nil
}

func (that *Game) updateGameState() {
	if !tictactoe.Terminal(that.Board) {
		that.Turn = tictactoe.Player(that.Board)
		return
	}

	that.Status = StatusFinished
	that.Turn = ""

	if winner := tictactoe.Winner(that.Board); winner != entity.EmptyCell {
		that.Winner = winner
		return
	}

	that.Winner = PlayerTie
}
