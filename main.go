//go:build !lambda

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

const defaultInput = "inputs/day-19.txt"

type cliOptions struct {
	input       string
	configPath  string
	jsonOut     bool
	verbose     bool
	workers     int
	noPrune     bool
	cacheDir    string
	metricsFile string
	blueprintID int
}

func newRootCmd() *cobra.Command {
	var opts cliOptions

	cmd := &cobra.Command{
		Use:   "geode-optimizer <part>",
		Short: "Find the most geodes each blueprint can crack",
		Long: `Reads one blueprint per line and searches every build order.

Part 1 sums the quality level (id * geodes) of every blueprint over 24 minutes.
Part 2 multiplies the geodes of the first three blueprints over 32 minutes.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrUnknownPart, args[0])
			}
			return run(cmd, part, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", defaultInput, "Path to the blueprint list")
	f.StringVar(&opts.configPath, "config", "", "Path to a YAML run config")
	f.BoolVar(&opts.jsonOut, "json", false, "Output results as JSON")
	f.BoolVar(&opts.verbose, "verbose", false, "Print per-blueprint progress to stderr")
	f.IntVar(&opts.workers, "workers", 0, "Blueprints searched concurrently (0 = GOMAXPROCS)")
	f.BoolVar(&opts.noPrune, "no-prune", false, "Disable the dominance heuristic (exhaustive, slow)")
	f.StringVar(&opts.cacheDir, "cache-dir", "", "Directory of the persistent result store")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "Write search metrics in Prometheus text format")
	f.IntVar(&opts.blueprintID, "blueprint", 0, "Only search the blueprint with this id")
	return cmd
}

func run(cmd *cobra.Command, part int, opts cliOptions) error {
	if part != 1 && part != 2 {
		return fmt.Errorf("%w: %d", ErrUnknownPart, part)
	}
	SetVerbose(opts.verbose)

	cfg := DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = LoadConfig(opts.configPath); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if opts.noPrune {
		cfg.Prune = false
	}
	if flags.Changed("cache-dir") {
		cfg.CacheDir = opts.cacheDir
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	bps, err := LoadBlueprints(opts.input)
	if err != nil {
		return err
	}
	if opts.blueprintID != 0 {
		bp := FindBlueprint(bps, opts.blueprintID)
		if bp == nil {
			return fmt.Errorf("blueprint %d not found in %s", opts.blueprintID, opts.input)
		}
		bps = []Blueprint{*bp}
	}
	logger.Debug("loaded blueprints", "count", len(bps), "input", opts.input)

	var store *Store
	if cfg.CacheDir != "" {
		if store, err = OpenStore(cfg.CacheDir); err != nil {
			return err
		}
		defer store.Close()
	}

	runner := NewRunner(cfg, store)
	rep, err := runner.Run(cmd.Context(), part, bps)
	if err != nil {
		return err
	}

	if opts.verbose {
		printTable(cmd.ErrOrStderr(), rep)
	}
	if opts.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewRunOutput(rep, runner.workers())); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), rep.Answer)
	}

	if cfg.MetricsFile != "" {
		if err := WriteMetrics(cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics %s: %w", cfg.MetricsFile, err)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
