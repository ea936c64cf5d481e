package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logger, logErr := zap.NewProductionConfig().Build()
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "sortdemo: %v\n", err)
			os.Exit(1)
		}
		exitWithError(logger, err)
	}
}

// exitWithError logs err at fatal level, which exits with status 1
func exitWithError(logger *zap.Logger, err error) {
	logger.Fatal("sortdemo failed", zap.Error(err))
}

func newRootCmd(out io.Writer) *cobra.Command {
	config := DefaultSortConfig()
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "sortdemo",
		Short: "Sort random integers with selection sort, step by step",
		Long: `sortdemo fills an array with pseudo-random integers and sorts it with
selection sort, printing the array after every swap.

Run without flags to sort ten values drawn from [20, 90).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			zapConfig := zap.NewProductionConfig()
			if config.Verbose {
				zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zapConfig.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(config, out, logger)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&config.Size, "size", "n", config.Size, "Number of values to generate and sort")
	flags.Int64Var(&config.Seed, "seed", config.Seed, "Random seed; 0 seeds from the clock")
	flags.IntVar(&config.Min, "min", config.Min, "Smallest value that may be generated (inclusive)")
	flags.IntVar(&config.Max, "max", config.Max, "Upper bound for generated values (exclusive)")
	flags.StringVar(&config.Mode, "mode", config.Mode, "Output mode: trace or summary")
	flags.StringVarP(&config.Algorithm, "algorithm", "a", config.Algorithm,
		"Sort algorithm: selection, insertion, bubble, tree, quick, merge or radix")
	flags.BoolVar(&config.Stats, "stats", config.Stats, "Log comparison and swap counts after sorting")
	flags.BoolVarP(&config.Verbose, "verbose", "v", config.Verbose, "Enable debug logging")

	return cmd
}

func run(config SortConfig, out io.Writer, logger *zap.Logger) error {
	strategy, err := strategyFor(config.Mode)
	if err != nil {
		return err
	}
	algorithm, err := ParseAlgorithm(config.Algorithm)
	if err != nil {
		return err
	}

	var src *Randomizer
	if config.Seed != 0 {
		src = NewSeededRandomizer(config.Seed)
	} else {
		src = NewRandomizer()
	}

	sortMetrics := NewSortMetrics()
	demo := NewSortingDemoWithRange(config.Size, config.Min, config.Max, src).
		WithAlgorithm(algorithm).
		WithLogger(logger).
		WithMetrics(sortMetrics)

	logger.Debug("Generated sequence",
		zap.String("algorithm", string(algorithm)),
		zap.Int("size", demo.Len()),
		zap.Int64("seed", config.Seed),
		zap.Ints("values", demo.Values()))

	if err := strategy.Present(out, demo); err != nil {
		return err
	}

	if config.Stats {
		stats := sortMetrics.Snapshot()
		logger.Info("Sort completed",
			zap.String("algorithm", string(algorithm)),
			zap.Int("size", demo.Len()),
			zap.Int64("comparisons", stats.Comparisons),
			zap.Int64("swaps", stats.Swaps),
			zap.Int64("self_swaps", stats.SelfSwaps),
			zap.Int64("moves", stats.Moves),
			zap.Duration("duration", stats.Duration))
	}
	return nil
}
