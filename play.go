package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-timetravel/internal"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
)

func newPlayCmd(opts *rootOptions) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: "Play a game in the terminal. Games are kept in memory, so the storage settings of the config file are not used.\n" +
			"With --verbose, logs go to stderr at the config's log-level.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(opts.configPath)

			return app.RunConsole(consoleLogger(conf, verbose, cmd.ErrOrStderr()))
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "write logs to stderr")

	return cmd
}

// consoleLogger stays silent unless verbose, logs would interleave with the board.
func consoleLogger(conf *config.Config, verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel(conf)}))
}
