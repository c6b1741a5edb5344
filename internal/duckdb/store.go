// Package duckdb persists loaded variant records into a DuckDB database so
// they can be queried with plain SQL after an export.
package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/progen-bio/vcfview/internal/vcf"
)

// Store manages a DuckDB connection holding exported variant records.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates the variants table if it doesn't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS variants (
		chrom VARCHAR,
		pos BIGINT,
		id VARCHAR,
		ref VARCHAR,
		alt VARCHAR,
		qual DOUBLE,
		filter VARCHAR,
		info VARCHAR
	)`)
	return err
}

// WriteRecords batch-inserts records using the Appender API.
// Absent QUAL values are stored as SQL NULL, never as zero.
func (s *Store) WriteRecords(records []*vcf.Record) error {
	if len(records) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "variants")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range records {
		var qual any
		if r.HasQual {
			qual = r.Qual
		}
		if err := appender.AppendRow(
			r.Chrom, r.Pos, r.ID, r.Ref, r.Alt, qual, r.Filter, r.Info,
		); err != nil {
			return fmt.Errorf("append variant: %w", err)
		}
	}

	return appender.Flush()
}

// Count returns the number of exported records.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM variants").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count variants: %w", err)
	}
	return n, nil
}

// CountPass returns the number of exported records with FILTER = PASS.
func (s *Store) CountPass() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM variants WHERE filter = 'PASS'").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pass variants: %w", err)
	}
	return n, nil
}

// CountByChrom returns per-chromosome record counts keyed by chromosome.
func (s *Store) CountByChrom() (map[string]int64, error) {
	rows, err := s.db.Query("SELECT chrom, COUNT(*) FROM variants GROUP BY chrom")
	if err != nil {
		return nil, fmt.Errorf("count by chrom: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var chrom string
		var n int64
		if err := rows.Scan(&chrom, &n); err != nil {
			return nil, fmt.Errorf("scan chrom count: %w", err)
		}
		counts[chrom] = n
	}
	return counts, rows.Err()
}

// Clear removes all exported records.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM variants")
	return err
}
