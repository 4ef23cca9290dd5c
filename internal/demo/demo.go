// Package demo runs the end-to-end demonstration printed by the demo command.
package demo

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/inodb/fmtexample/internal/analyzer"
	"github.com/inodb/fmtexample/internal/fixtures"
)

// DefaultDataPath is the data file the demo reads when none is configured.
const DefaultDataPath = "test_data.csv"

// Options configures a demo run.
type Options struct {
	DataPath string
	Verbose  bool
	Logger   *zap.Logger
}

// Run writes the demonstration to w. A missing data file is logged and
// skipped; the rest of the demonstration still runs.
func Run(w io.Writer, opts Options) error {
	if opts.DataPath == "" {
		opts.DataPath = DefaultDataPath
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := analyzer.NewAnalyzer(opts.DataPath, opts.Verbose)
	a.SetLogger(logger)
	a.SetOutput(w)

	fmt.Fprintln(w, "Testing formatting tools...")

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	fmt.Fprintf(w, "Working directory: %s\n", wd)

	df, err := a.LoadData()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("skipping statistics", zap.String("path", a.DataPath()), zap.Error(err))
	case err != nil:
		return err
	case df != nil:
		a.CalculateStatistics(df)
	}

	result := fixtures.SumAll(1, 2, []int{3, 4, 5})
	fmt.Fprintf(w, "Result: %d\n", result)

	for i := 0; i < 5; i++ {
		fmt.Fprintln(w, i)
		fmt.Fprintln(w, i*2)
	}

	testData := map[string]int{"a": 1, "b": 2, "c": 3}
	fmt.Fprintln(w, testData)

	return nil
}
