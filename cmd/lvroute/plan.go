package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/planner"
)

func newPlanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan FILE",
		Short: "Print an itinerary for every trip listed in FILE",
		Long: `Plan reads a road-network file and prints one itinerary per trip.
If some location cannot reach another, "Disconnected Map" is printed and no
trips are planned.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(cmd, args[0])
		},
	}
}

func (a *app) runPlan(cmd *cobra.Command, path string) error {
	rec, nw, err := a.loadNetwork(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	connected, err := nw.Connected()
	if err != nil && !errors.Is(err, bfs.ErrEmptyGraph) {
		return err
	}
	if !connected {
		fmt.Fprintln(out, "Disconnected Map")
		return nil
	}

	outcomes, err := nw.PlanAll(cmd.Context(), rec.Trips)
	if err != nil {
		return err
	}
	for i, o := range outcomes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if o.Err != nil {
			if !errors.Is(o.Err, core.ErrNoPath) {
				return o.Err
			}
			a.log.Warn("trip has no route", zap.Int("trip", i), zap.Error(o.Err))
			fmt.Fprintf(out, "No route from %s to %s\n",
				rec.Locations[o.Trip.Start].Name, rec.Locations[o.Trip.End].Name)
			continue
		}
		if err = planner.WriteItinerary(out, o.Itinerary); err != nil {
			return err
		}
	}

	return nil
}
