package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/server"
)

// errNoMapFile is returned by serve when neither an argument nor
// server.map_file names a road file.
var errNoMapFile = errors.New("lvroute: serve needs a map file (argument, server.map_file or LVROUTE_MAP_FILE)")

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve [FILE]",
		Short: "Serve trip queries over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Server.MapFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errNoMapFile
			}
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			_, nw, err := a.loadNetwork(path)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(nw, a.cfg.Server, a.log).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
