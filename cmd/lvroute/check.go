package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/bfs"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate FILE and report its size and connectivity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, nw, err := a.loadNetwork(args[0])
			if err != nil {
				return err
			}
			connected, err := nw.Connected()
			if err != nil && !errors.Is(err, bfs.ErrEmptyGraph) {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "locations: %d\nroads: %d\ntrips: %d\nconnected: %t\n",
				len(rec.Locations), len(rec.Roads), len(rec.Trips), connected)

			return nil
		},
	}
}
