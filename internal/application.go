package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/ai50-backend/internal/config"
	"github.com/rocketscienceinc/ai50-backend/internal/heredity"
	"github.com/rocketscienceinc/ai50-backend/internal/loader"
	"github.com/rocketscienceinc/ai50-backend/internal/report"
	"github.com/rocketscienceinc/ai50-backend/internal/service"
	"github.com/rocketscienceinc/ai50-backend/transport/console"
)

// RunHeredity - loads the pedigree at dataPath, infers every distribution and prints the report to out.
func RunHeredity(ctx context.Context, logger *slog.Logger, conf *config.Config, dataPath string, out io.Writer) error {
	log := logger.With("component", "app")

	people, err := loader.LoadFile(dataPath)
	if err != nil {
		return fmt.Errorf("could not load people: %w", err)
	}
	log.Debug("people loaded", "path", dataPath, "count", len(people))

	probs := heredity.ProbabilitiesFromConfig(conf.Heredity.Probabilities)
	model := heredity.NewModel(logger, probs, conf.Heredity.Workers)

	table, err := model.Infer(ctx, people)
	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}

	if err = report.WriteHeredity(out, people, table); err != nil {
		return fmt.Errorf("could not print report: %w", err)
	}

	return nil
}

// RunTicTacToe - plays one game against the minimax bot on the given terminal streams.
func RunTicTacToe(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	bot := service.NewBotService(logger, nil)
	server := console.New(logger, bot, in, out)

	if _, err := server.Play(ctx, conf.TicTacToe.HumanMark); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}
