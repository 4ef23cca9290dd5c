package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/fmtexample/internal/analyzer"
)

// WriteStats stores stats for the file version fp, replacing any earlier
// entry for the same path.
func (s *Store) WriteStats(fp FileFingerprint, stats analyzer.Statistics) error {
	ctx := context.Background()
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "DELETE FROM table_stats WHERE path = ?", fp.Path); err != nil {
		return fmt.Errorf("delete stale stats: %w", err)
	}

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "table_stats")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	if err := appender.AppendRow(
		fp.Path, fp.Size, fp.ModTime.UnixNano(),
		nullable(stats.Mean), nullable(stats.Std), int64(stats.Count),
	); err != nil {
		return fmt.Errorf("append stats: %w", err)
	}

	return appender.Flush()
}

// LookupStats returns the cached statistics for fp. The boolean is false when
// nothing is cached or the cached entry was computed from a different
// version of the file.
func (s *Store) LookupStats(fp FileFingerprint) (analyzer.Statistics, bool, error) {
	var (
		size, modNS, count int64
		mean, std          sql.NullFloat64
	)
	err := s.db.QueryRow(`SELECT size, mod_time_ns, mean, std, row_count
		FROM table_stats WHERE path = ?`, fp.Path).Scan(&size, &modNS, &mean, &std, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return analyzer.Statistics{}, false, nil
	}
	if err != nil {
		return analyzer.Statistics{}, false, fmt.Errorf("query stats: %w", err)
	}

	cached := FileFingerprint{Path: fp.Path, Size: size, ModTime: time.Unix(0, modNS)}
	if !cached.Matches(fp) {
		return analyzer.Statistics{}, false, nil
	}

	return analyzer.Statistics{
		Mean:  fromNullable(mean),
		Std:   fromNullable(std),
		Count: int(count),
	}, true, nil
}

// ClearStats removes all cached statistics.
func (s *Store) ClearStats() error {
	_, err := s.db.Exec("DELETE FROM table_stats")
	return err
}

// StatsCount returns the number of cached entries.
func (s *Store) StatsCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM table_stats").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// NaN is stored as NULL.
func nullable(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func fromNullable(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
