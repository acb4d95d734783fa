package main

import (
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-timetravel/internal"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve games over REST and WebSocket",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			conf := initConfig(opts.configPath)

			return app.RunApp(initLogger(conf), conf)
		},
	}
}
