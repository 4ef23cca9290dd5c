// Package analyzer loads tab-separated tables and computes summary statistics.
package analyzer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"
)

// Analyzer loads a single data file and summarizes it.
type Analyzer struct {
	dataPath string
	verbose  bool
	out      io.Writer
	logger   *zap.Logger
	results  map[string]float64
}

// NewAnalyzer creates an analyzer for the file at dataPath.
// When verbose is set, computed statistics are echoed to stdout.
func NewAnalyzer(dataPath string, verbose bool) *Analyzer {
	return &Analyzer{
		dataPath: dataPath,
		verbose:  verbose,
		out:      os.Stdout,
		logger:   zap.NewNop(),
		results:  make(map[string]float64),
	}
}

// SetLogger sets the logger for load failures.
func (a *Analyzer) SetLogger(l *zap.Logger) {
	a.logger = l
}

// SetOutput sets where verbose messages are written.
func (a *Analyzer) SetOutput(w io.Writer) {
	a.out = w
}

// DataPath returns the path the analyzer reads from.
func (a *Analyzer) DataPath() string {
	return a.dataPath
}

// LoadData reads the data file as a tab-separated table with a header row.
//
// A missing file is reported as an error matching fs.ErrNotExist and nothing
// is parsed. A header without data lines gives a zero-row table carrying the
// header's column names. Any other failure to parse the file is logged and
// yields a nil table with a nil error.
func (a *Analyzer) LoadData() (*dataframe.DataFrame, error) {
	if err := checkExists(a.dataPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.dataPath)
	if err != nil {
		a.logger.Error("failed to load data", zap.String("path", a.dataPath), zap.Error(err))
		return nil, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.WithDelimiter('\t'),
		dataframe.HasHeader(true),
	)
	if df.Err == nil {
		return &df, nil
	}

	if header, ok := headerOnly(data); ok {
		empty := emptyFrame(header)
		if empty.Err == nil {
			return &empty, nil
		}
	}

	a.logger.Error("failed to load data", zap.String("path", a.dataPath), zap.Error(df.Err))
	return nil, nil
}

// CalculateStatistics summarizes df and remembers the result.
func (a *Analyzer) CalculateStatistics(df *dataframe.DataFrame) Statistics {
	stats := Summarize(df)
	a.Record(stats)
	return stats
}

// Record remembers stats as the current result, echoing them when verbose.
// Use it for statistics obtained without loading the table, e.g. from a cache.
func (a *Analyzer) Record(stats Statistics) {
	for k, v := range stats.Map() {
		a.results[k] = v
	}

	if a.verbose {
		fmt.Fprintf(a.out, "Calculated statistics: %s\n", stats)
	}
}

// Results returns the most recently computed statistics keyed by metric name.
func (a *Analyzer) Results() map[string]float64 {
	out := make(map[string]float64, len(a.results))
	for k, v := range a.results {
		out[k] = v
	}
	return out
}

func checkExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("data file not found: %s: %w", path, fs.ErrNotExist)
	}
	return fmt.Errorf("stat data file: %w", err)
}

// headerOnly reports whether data holds exactly one tab-separated record and
// returns its fields.
func headerOnly(data []byte) ([]string, bool) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = '\t'
	records, err := r.ReadAll()
	if err != nil || len(records) != 1 {
		return nil, false
	}
	return records[0], true
}

// emptyFrame builds a zero-row table with one string column per name.
func emptyFrame(names []string) dataframe.DataFrame {
	cols := make([]series.Series, len(names))
	for i, name := range names {
		cols[i] = series.New([]string{}, series.String, name)
	}
	return dataframe.New(cols...)
}
