package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/logging"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/roadfile"
)

// app holds state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvroute",
		Short:         "Road-network trip planner",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	root.AddCommand(newPlanCmd(a), newCheckCmd(a), newServeCmd(a))

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	l, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, l

	return nil
}

// loadNetwork parses path and builds a Network with the configured planner options.
func (a *app) loadNetwork(path string) (*roadfile.FileRecord, *planner.Network, error) {
	rec, err := roadfile.ParseFile(path)
	if err != nil {
		return nil, nil, err
	}
	opts := []planner.Option{
		planner.WithLogger(a.log),
		planner.WithCacheSize(a.cfg.Planner.CacheSize),
	}
	if a.cfg.Planner.StrictWeights {
		opts = append(opts, planner.WithStrictWeights())
	}
	nw, err := planner.NewNetwork(rec, opts...)
	if err != nil {
		return nil, nil, err
	}
	a.log.Info("map loaded",
		zap.String("file", path),
		zap.Int("locations", len(rec.Locations)),
		zap.Int("roads", len(rec.Roads)),
		zap.Int("trips", len(rec.Trips)))

	return rec, nw, nil
}
