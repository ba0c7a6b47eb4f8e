package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/ai50-backend/internal/entity"
	"github.com/rocketscienceinc/ai50-backend/internal/game"
	"github.com/rocketscienceinc/ai50-backend/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Searcher picks a move for the side to play, ok is false on a terminal board.
type Searcher func(board entity.Board) (entity.Move, bool)

type BotService interface {
	MakeTurn(match *game.Game) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
	search Searcher
}

// NewBotService - bot that plays the minimax move. A nil searcher defaults to tictactoe.BestMove.
func NewBotService(logger *slog.Logger, search Searcher) BotService {
	if search == nil {
		search = tictactoe.BestMove
	}

	return &botService{
		logger: logger.With("component", "bot"),
		search: search,
	}
}

func (that *botService) MakeTurn(match *game.Game) (entity.Move, error) {
	move, ok := that.search(match.Board)
	if !ok {
		return entity.Move{}, ErrNoAvailableMoves
	}

	mark := match.Turn
	if err := match.MakeMove(mark, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot moved", "mark", mark, "row", move.Row, "col", move.Col)

	return move, nil
}
