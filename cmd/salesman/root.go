package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/salesman/brute"
	"github.com/katalvlaran/salesman/cities"
	"github.com/katalvlaran/salesman/grid"
	"github.com/katalvlaran/salesman/render"
)

// NewRootCmd builds the salesman command. Construction is side-effect free;
// tests create fresh instances with their own output buffers.
func NewRootCmd() *cobra.Command {
	var (
		cfg        = DefaultConfig()
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "salesman",
		Short: "Exact brute-force TSP over a random city map",
		Long: `salesman generates a random set of cities on a square map, builds the
pairwise Euclidean distance grid, and exhaustively walks every tour anchored
at city 0 to find the exact optimum.

The search is factorial by design — it is a benchmark of exhaustive
enumeration, useful up to roughly 12 cities.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// File values fill in everything the flags did not set.
			if configPath != "" {
				fileCfg, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				applyUnchanged(cmd, &cfg, fileCfg)
			}

			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.CityCount, "cities", cfg.CityCount, "number of cities to generate")
	f.IntVar(&cfg.MapWidth, "width", cfg.MapWidth, "map width; coordinates lie in [0..width)")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 = fixed default stream)")
	f.IntVar(&cfg.GraphPixels, "pixels", cfg.GraphPixels, "square size of the debug plot raster")
	f.BoolVar(&cfg.Debug, "debug", cfg.Debug, "print the plot, the grid and new-minimum traces")
	f.BoolVar(&cfg.ShowAllTraversals, "show-all", cfg.ShowAllTraversals, "print every scored tour (debug; factorial output)")
	f.BoolVar(&cfg.HalveReflections, "halve-reflections", cfg.HalveReflections, "score each undirected tour once instead of twice")
	f.StringVar(&configPath, "config", "", "YAML config file (flags override file values)")

	return cmd
}

// applyUnchanged copies file values into cfg for every flag the user left
// untouched — explicit flags always win over the config file.
func applyUnchanged(cmd *cobra.Command, cfg *Config, file Config) {
	f := cmd.Flags()
	if !f.Changed("cities") {
		cfg.CityCount = file.CityCount
	}
	if !f.Changed("width") {
		cfg.MapWidth = file.MapWidth
	}
	if !f.Changed("seed") {
		cfg.Seed = file.Seed
	}
	if !f.Changed("pixels") {
		cfg.GraphPixels = file.GraphPixels
	}
	if !f.Changed("debug") {
		cfg.Debug = file.Debug
	}
	if !f.Changed("show-all") {
		cfg.ShowAllTraversals = file.ShowAllTraversals
	}
	if !f.Changed("halve-reflections") {
		cfg.HalveReflections = file.HalveReflections
	}
}

// run executes the full pipeline: generate → grid → search → report.
func run(cmd *cobra.Command, cfg Config) error {
	out := cmd.OutOrStdout()

	pts, err := cities.Generate(cfg.CityCount, cfg.MapWidth, cfg.Seed)
	if err != nil {
		return err
	}

	g, err := grid.New(pts)
	if err != nil {
		return err
	}

	if cfg.Debug {
		plot, perr := render.PlotString(pts, cfg.MapWidth, cfg.GraphPixels)
		if perr != nil {
			return perr
		}
		fmt.Fprint(out, plot)
		fmt.Fprint(out, render.GridString(g))
	}

	opts := brute.DefaultOptions()
	opts.HalveReflections = cfg.HalveReflections
	if cfg.Debug {
		if cfg.ShowAllTraversals {
			opts.Hooks.OnTour = func(tour []int, _ float64) {
				fmt.Fprintln(out, render.PathString(tour))
			}
		}
		opts.Hooks.OnNewMin = func(tour []int, cost float64) {
			if !cfg.ShowAllTraversals {
				fmt.Fprintln(out, render.PathString(tour))
			}
			fmt.Fprintf(out, "\t\t\t%s\n", styles.NewMin.Render(fmt.Sprintf("New min: %v", cost)))
		}
	}

	started := time.Now()
	res, err := brute.Minimize(g, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	fmt.Fprintf(out, "%s %v\n", styles.Title.Render("Optimal path length:"), res.Cost)
	fmt.Fprintln(out, render.PathString(res.Tour))
	fmt.Fprintln(out, styles.Muted.Render(fmt.Sprintf("scored %d tours in %s", res.Leaves, elapsed)))

	return nil
}
