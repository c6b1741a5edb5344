package vcf

import (
	"io"
	"strconv"
	"strings"
)

// LineReader reads records by splitting data lines on tabs, keeping every
// column exactly as it appears in the file.
//
// Malformed data lines are tolerated, not fatal: a line with fewer than 8
// columns or a non-numeric POS is dropped and counted, and the read moves on.
// Supports both plain VCF and gzipped VCF (.vcf.gz) files.
type LineReader struct {
	src     *source
	skipped int
}

// NewLineReader creates a line-based reader for the given file.
func NewLineReader(path string) (*LineReader, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	return &LineReader{src: src}, nil
}

// Next reads the next record from the file.
// Returns nil, nil when there are no more records.
func (r *LineReader) Next() (*Record, error) {
	for {
		line, err := r.src.readLine()
		if err != nil {
			if err == io.EOF {
				return nil, nil
			}
			// Mid-stream failures (truncated gzip, I/O errors) carry the
			// line position; malformed rows never land here.
			return nil, &ParseError{Line: r.src.lineNumber + 1, Message: err.Error()}
		}

		// Header and meta lines carry no records
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec := parseDataLine(line)
		if rec == nil {
			r.skipped++
			continue
		}
		return rec, nil
	}
}

// parseDataLine converts one data line into a Record, or nil when the line
// does not hold at least 8 columns with a numeric 1-based position.
func parseDataLine(line string) *Record {
	fields := strings.Split(line, "\t")
	if len(fields) < 8 {
		return nil
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || pos < 1 {
		return nil
	}

	rec := &Record{
		Chrom:  fields[0],
		Pos:    pos,
		ID:     fields[2],
		Ref:    fields[3],
		Alt:    fields[4],
		Filter: fields[6],
		Info:   fields[7],
		Raw:    line,
	}

	// "." and junk both mean "no quality", never a silent zero
	if fields[5] != "." {
		if qual, err := strconv.ParseFloat(fields[5], 64); err == nil {
			rec.Qual = qual
			rec.HasQual = true
		}
	}

	return rec
}

// LineNumber returns the current line number being processed.
func (r *LineReader) LineNumber() int {
	return r.src.lineNumber
}

// Skipped returns the number of malformed data lines dropped so far.
func (r *LineReader) Skipped() int {
	return r.skipped
}

// Close closes the reader and underlying file.
func (r *LineReader) Close() error {
	return r.src.close()
}
