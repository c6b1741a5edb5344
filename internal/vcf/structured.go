package vcf

import "strings"

// StructuredReader is the enriched parse path. On top of the line reader's
// column handling it normalizes the FILTER column, joins ALT alleles with
// commas and re-serializes INFO from tagged key/value pairs, so downstream
// code sees one canonical spelling of each column regardless of how the
// source file wrote it.
type StructuredReader struct {
	line *LineReader
}

// NewStructuredReader creates a structured reader for the given file.
// Supports both plain VCF and gzipped VCF (.vcf.gz) files.
func NewStructuredReader(path string) (*StructuredReader, error) {
	line, err := NewLineReader(path)
	if err != nil {
		return nil, err
	}
	return &StructuredReader{line: line}, nil
}

// Next reads the next record, with normalized ALT, FILTER and INFO columns.
// Returns nil, nil when there are no more records.
func (r *StructuredReader) Next() (*Record, error) {
	rec, err := r.line.Next()
	if err != nil || rec == nil {
		return rec, err
	}

	rec.Alt = normalizeAlt(rec.Alt)
	rec.Filter = NormalizeFilter(rec.Filter)
	if fields := ParseInfo(rec.Info); fields != nil {
		rec.Info = fields.String()
	}

	return rec, nil
}

// normalizeAlt joins the alternate alleles with commas, dropping empty
// entries; an empty ALT column becomes ".".
func normalizeAlt(alt string) string {
	if alt == "" || alt == "." {
		return "."
	}
	alleles := strings.Split(alt, ",")
	kept := alleles[:0]
	for _, a := range alleles {
		if a != "" {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		return "."
	}
	return strings.Join(kept, ",")
}

// NormalizeFilter canonicalizes the FILTER column: an empty column, a "."
// placeholder or any filter list containing PASS collapses to the literal
// "PASS"; otherwise the failing filter names stay semicolon-joined.
func NormalizeFilter(filter string) string {
	if filter == "" || filter == "." {
		return "PASS"
	}
	names := strings.Split(filter, ";")
	for _, n := range names {
		if n == "PASS" {
			return "PASS"
		}
	}
	return strings.Join(names, ";")
}

// LineNumber returns the current line number being processed.
func (r *StructuredReader) LineNumber() int {
	return r.line.LineNumber()
}

// Skipped returns the number of malformed data lines dropped so far.
func (r *StructuredReader) Skipped() int {
	return r.line.Skipped()
}

// Close closes the reader and underlying file.
func (r *StructuredReader) Close() error {
	return r.line.Close()
}
