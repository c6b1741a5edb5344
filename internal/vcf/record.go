// Package vcf provides VCF record parsing for the viewer.
package vcf

// Record represents a single variant call from a VCF file.
// Records are built once during a load and never mutated afterwards.
type Record struct {
	Chrom   string  // Chromosome name (e.g., "12", "chr12")
	Pos     int64   // 1-based genomic position
	ID      string  // Variant identifier ("." when absent)
	Ref     string  // Reference allele
	Alt     string  // Alternate allele(s), comma-joined ("." when absent)
	Qual    float64 // Quality score; only meaningful when HasQual is true
	HasQual bool    // False when QUAL is "." or unparsable
	Filter  string  // Filter status ("PASS" or semicolon-joined filter names)
	Info    string  // INFO column, semicolon-joined key[=value] pairs
	Raw     string  // Original source line, kept for the detail pane
}

// IsPass reports whether the record passed all filters.
// The comparison is exact; "pass" or "Pass" do not count.
func (r *Record) IsPass() bool {
	return r.Filter == "PASS"
}

// IsSNV returns true if the record is a single nucleotide variant.
func (r *Record) IsSNV() bool {
	return len(r.Ref) == 1 && len(r.Alt) == 1
}

// IsIndel returns true if the record is an insertion or deletion.
func (r *Record) IsIndel() bool {
	return len(r.Ref) != len(r.Alt)
}

// RecordSet is the full ordered sequence of records from one loaded file.
// A set is constructed completely before anything reads it and is replaced
// wholesale on the next load.
type RecordSet struct {
	Records []*Record
	Path    string // Source file path
	Skipped int    // Malformed data lines dropped during the load
}

// Len returns the number of records in the set.
func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}
