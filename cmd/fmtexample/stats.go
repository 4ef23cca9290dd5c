package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/fmtexample/internal/analyzer"
	"github.com/inodb/fmtexample/internal/duckdb"
	"github.com/inodb/fmtexample/internal/output"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>...",
		Short: "Compute mean, std and row count of tab-separated files",
		Long: `Load each file as a tab-separated table with a header row and report
the mean of the numeric column means, the mean of their sample standard
deviations, and the row count.`,
		Example: `  fmtexample stats data.tsv
  fmtexample stats --cache a.tsv b.tsv
  fmtexample stats --clear-cache`,
		Args: usageArgs(func(cmd *cobra.Command, args []string) error {
			if clearing, _ := cmd.Flags().GetBool("clear-cache"); clearing {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args)
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Echo each statistics record as it is computed")
	cmd.Flags().Bool("cache", false, "Reuse statistics cached in DuckDB for unchanged files")
	cmd.Flags().String("cache-path", "", "DuckDB cache file (default ~/.fmtexample/stats.duckdb)")
	cmd.Flags().Bool("clear-cache", false, "Remove all cached statistics before computing")
	viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	viper.BindPFlag("cache.enabled", cmd.Flags().Lookup("cache"))
	viper.BindPFlag("cache.path", cmd.Flags().Lookup("cache-path"))

	return cmd
}

func runStats(cmd *cobra.Command, paths []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	clearCache, _ := cmd.Flags().GetBool("clear-cache")

	var store *duckdb.Store
	if viper.GetBool("cache.enabled") || clearCache {
		store, err = duckdb.Open(viper.GetString("cache.path"))
		if err != nil {
			return fmt.Errorf("open stats cache: %w", err)
		}
		defer store.Close()
		logger.Debug("using stats cache", zap.String("path", viper.GetString("cache.path")))
	}

	if clearCache {
		n, err := store.StatsCount()
		if err != nil {
			return fmt.Errorf("count cached stats: %w", err)
		}
		if err := store.ClearStats(); err != nil {
			return fmt.Errorf("clear stats cache: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Cleared %d cached statistics\n", n)
		if len(paths) == 0 {
			return nil
		}
	}

	w := output.NewTabWriter(cmd.OutOrStdout())
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, path := range paths {
		a := analyzer.NewAnalyzer(path, viper.GetBool("verbose"))
		a.SetLogger(logger)
		a.SetOutput(cmd.ErrOrStderr())

		stats, cached, err := fileStats(a, store, logger)
		if err != nil {
			return err
		}
		if err := w.Write(path, stats, cached); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}

	return w.Flush()
}

// fileStats returns statistics for the analyzer's file, consulting store
// first when set. A file that fails to parse is reported as an error.
func fileStats(a *analyzer.Analyzer, store *duckdb.Store, logger *zap.Logger) (analyzer.Statistics, bool, error) {
	path := a.DataPath()

	var fp duckdb.FileFingerprint
	if store != nil {
		var err error
		fp, err = duckdb.StatFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// LoadData reports it below.
		case err != nil:
			return analyzer.Statistics{}, false, fmt.Errorf("stat %s: %w", path, err)
		default:
			stats, ok, err := store.LookupStats(fp)
			if err != nil {
				logger.Warn("stats cache lookup failed", zap.String("path", path), zap.Error(err))
			} else if ok {
				logger.Debug("stats cache hit", zap.String("path", path))
				a.Record(stats)
				return stats, true, nil
			}
		}
	}

	df, err := a.LoadData()
	if err != nil {
		return analyzer.Statistics{}, false, err
	}
	if df == nil {
		return analyzer.Statistics{}, false, fmt.Errorf("could not parse %s as tab-separated data", path)
	}

	stats := a.CalculateStatistics(df)

	if store != nil && fp.Path != "" {
		if err := store.WriteStats(fp, stats); err != nil {
			logger.Warn("stats cache write failed", zap.String("path", path), zap.Error(err))
		}
	}

	return stats, false, nil
}
