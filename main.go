package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/ai50-backend/internal"
	"github.com/rocketscienceinc/ai50-backend/internal/config"
)

var (
	configPath string // path to the yml config file
	humanMark  string // mark played by the human in tictactoe
)

// main - is the entry point of the application. It wires the commands, configuration and logger.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ai50",
		Short:         "Exact heredity inference and an unbeatable tic-tac-toe bot",
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "./config.yml", "path to the config file")

	heredityCmd := &cobra.Command{
		Use:   "heredity <data.csv>",
		Short: "Print the gene and trait distribution of every person in a pedigree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.MustLoad(configPath)
			logger := initLogger(conf)

			return app.RunHeredity(cmd.Context(), logger, conf, args[0], cmd.OutOrStdout())
		},
	}

	tictactoeCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against the minimax bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)
			logger := initLogger(conf)

			if cmd.Flags().Changed("mark") {
				conf.TicTacToe.HumanMark = strings.ToUpper(humanMark)
			}

			return app.RunTicTacToe(cmd.Context(), logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	tictactoeCmd.Flags().StringVarP(&humanMark, "mark", "m", "X", "mark you play, X or O")

	root.AddCommand(heredityCmd, tictactoeCmd)

	return root
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
