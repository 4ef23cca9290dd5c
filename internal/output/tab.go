// Package output provides formatters for statistics and variant results.
package output

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/inodb/fmtexample/internal/analyzer"
)

// TabWriter writes statistics records in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#File",
			"Mean",
			"Std",
			"Count",
			"Cached",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes the statistics computed for one file.
func (tw *TabWriter) Write(path string, stats analyzer.Statistics, cached bool) error {
	cachedStr := "-"
	if cached {
		cachedStr = "YES"
	}

	values := []string{
		path,
		formatFloat(stats.Mean),
		formatFloat(stats.Std),
		strconv.Itoa(stats.Count),
		cachedStr,
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

// formatFloat renders NaN as "-" like other missing fields.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
