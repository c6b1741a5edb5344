package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// RecordReader is the interface for readers that produce variant records.
// The line reader and the structured reader both implement it and must agree
// on field semantics for well-formed input.
type RecordReader interface {
	// Next reads the next record.
	// Returns nil, nil when there are no more records.
	Next() (*Record, error)

	// Close closes the reader and releases resources.
	Close() error

	// LineNumber returns the current line number being processed.
	LineNumber() int

	// Skipped returns the number of malformed data lines dropped so far.
	Skipped() int
}

// ReaderMode selects which RecordReader implementation a load uses.
type ReaderMode string

const (
	// ReaderStructured is the enriched parse path: normalized FILTER,
	// comma-joined ALT and canonical INFO serialization. Preferred default.
	ReaderStructured ReaderMode = "structured"

	// ReaderBasic is the plain line-splitting path that keeps the columns
	// exactly as they appear in the file.
	ReaderBasic ReaderMode = "basic"
)

// NewReader opens path with the reader implementation selected by mode.
func NewReader(path string, mode ReaderMode) (RecordReader, error) {
	switch mode {
	case ReaderBasic:
		return NewLineReader(path)
	case ReaderStructured, "":
		return NewStructuredReader(path)
	default:
		return nil, fmt.Errorf("unknown reader mode %q", mode)
	}
}

// source wraps the shared file transport for both readers: it owns the file
// handle, transparently decompresses gzip input and hands out trimmed lines.
type source struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
}

// openSource opens path for line-oriented reading.
// Gzip input is detected by the magic bytes rather than the file name, so a
// mislabeled .gz still opens correctly.
func openSource(path string) (*source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vcf file: %w", err)
	}

	s := &source{file: file}

	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read vcf header: %w", err)
	}

	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek vcf file: %w", err)
	}

	// Gzip magic number (0x1f, 0x8b)
	if buf[0] == 0x1f && buf[1] == 0x8b {
		s.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		s.reader = bufio.NewReader(s.gzipReader)
	} else {
		s.reader = bufio.NewReader(file)
	}

	return s, nil
}

// readLine returns the next line with the trailing newline trimmed.
// io.EOF is returned once the input is exhausted.
func (s *source) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// Final line without a trailing newline
			s.lineNumber++
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	s.lineNumber++
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *source) close() error {
	if s.gzipReader != nil {
		s.gzipReader.Close()
	}
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// ParseError represents an error during VCF parsing with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vcf parse error at line %d: %s", e.Line, e.Message)
}
