package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ai50-backend/internal/apperror"
	"github.com/rocketscienceinc/ai50-backend/internal/entity"
	"github.com/rocketscienceinc/ai50-backend/internal/game"
	"github.com/rocketscienceinc/ai50-backend/internal/service"
)

var (
	ErrInvalidMark  = errors.New("mark must be X or O")
	ErrInputClosed  = errors.New("input closed before the game finished")
	errInvalidInput = errors.New("expected two numbers: row col")
)

// Server - plays one human versus bot game over a line based terminal.
type Server struct {
	logger *slog.Logger
	bot    service.BotService
	in     *bufio.Scanner
	out    io.Writer
}

func New(logger *slog.Logger, bot service.BotService, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger: logger.With("component", "console"),
		bot:    bot,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Play - runs the game loop until the game is over, input ends or ctx is canceled.
func (that *Server) Play(ctx context.Context, humanMark string) (*game.Game, error) {
	log := that.logger.With("method", "Play")

	if humanMark != entity.PlayerX && humanMark != entity.PlayerO {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMark, humanMark)
	}

	match := game.NewGame()
	fmt.Fprintf(that.out, "You play %s.\n", humanMark)

	for !match.IsFinished() {
		if err := ctx.Err(); err != nil {
			return match, fmt.Errorf("game interrupted: %w", err)
		}

		if match.Turn != humanMark {
			move, err := that.bot.MakeTurn(match)
			if err != nil {
				return match, fmt.Errorf("bot failed: %w", err)
			}
			fmt.Fprintf(that.out, "Bot plays %d %d\n", move.Row, move.Col)
			continue
		}

		fmt.Fprint(that.out, match.Board.String())
		fmt.Fprint(that.out, "Your move (row col): ")

		move, err := that.readMove()
		if err != nil {
			if errors.Is(err, errInvalidInput) {
				fmt.Fprintln(that.out, err)
				continue
			}
			return match, err
		}

		if err = match.MakeMove(humanMark, move); err != nil {
			if errors.Is(err, apperror.ErrInvalidMove) {
				fmt.Fprintln(that.out, "That cell is not available.")
				continue
			}
			return match, fmt.Errorf("failed to make move: %w", err)
		}
	}

	fmt.Fprint(that.out, match.Board.String())
	switch match.Winner {
	case game.PlayerTie:
		fmt.Fprintln(that.out, "Game over: tie.")
	default:
		fmt.Fprintf(that.out, "Game over: %s wins.\n", match.Winner)
	}

	log.Info("game finished", "winner", match.Winner, "human", humanMark)

	return match, nil
}

func (that *Server) readMove() (entity.Move, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return entity.Move{}, fmt.Errorf("failed to read input: %w", err)
		}
		return entity.Move{}, ErrInputClosed
	}

	fields := strings.Fields(that.in.Text())
	if len(fields) != 2 {
		return entity.Move{}, errInvalidInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, errInvalidInput
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, errInvalidInput
	}

	return entity.Move{Row: row, Col: col}, nil
}
