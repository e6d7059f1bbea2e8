package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/skosovsky/viewfind"
	"github.com/skosovsky/viewfind/prober"
)

var (
	configPath    string
	roots         []string
	defaultEngine string
	ceiling       int
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:           "viewfind",
	Short:         "Resolve and render templates across ordered view roots",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (root, default_engine)")
	rootCmd.PersistentFlags().StringSliceVarP(&roots, "root", "r", nil, "view root directory, repeatable; overrides config")
	rootCmd.PersistentFlags().StringVarP(&defaultEngine, "default-engine", "e", "", "extension used when the name has none")
	rootCmd.PersistentFlags().IntVar(&ceiling, "ceiling", prober.DefaultCeiling, "maximum concurrent filesystem probes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log lookup steps to stderr")
}

// renderer builds a Renderer from the config file and flags; flags win.
func renderer() (*viewfind.Renderer, error) {
	var cfg viewfind.Config
	if configPath != "" {
		var err error
		if cfg, err = viewfind.LoadConfig(configPath); err != nil {
			return nil, err
		}
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	opts := []viewfind.Option{
		viewfind.WithLogger(logger),
		viewfind.WithProber(prober.New(prober.WithCeiling(ceiling), prober.WithLogger(logger))),
	}
	if len(roots) > 0 {
		opts = append(opts, viewfind.WithRoots(roots...))
	}
	if defaultEngine != "" {
		opts = append(opts, viewfind.WithDefaultEngine(defaultEngine))
	}
	return viewfind.NewRenderer(cfg, opts...), nil
}
