// Package filter computes the visible subset of a loaded record set.
package filter

import (
	"strconv"
	"strings"

	"github.com/progen-bio/vcfview/internal/vcf"
)

// Criteria is the current filter input state.
type Criteria struct {
	Query    string // case-insensitive substring match
	PassOnly bool   // keep only records with FILTER == "PASS"
}

// IsEmpty reports whether the criteria match everything.
func (c Criteria) IsEmpty() bool {
	return c.Query == "" && !c.PassOnly
}

// VisibleSet is the ordered subsequence of a RecordSet satisfying some
// Criteria. It is recomputed from scratch on every criteria change and is
// read-only to the display layer.
type VisibleSet struct {
	Records []*vcf.Record
	Total   int // size of the underlying RecordSet
}

// Len returns the number of visible records.
func (v *VisibleSet) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Records)
}

// At returns the visible record at index i, or nil when out of range.
func (v *VisibleSet) At(i int) *vcf.Record {
	if v == nil || i < 0 || i >= len(v.Records) {
		return nil
	}
	return v.Records[i]
}

// Apply filters records by criteria, preserving input order.
//
// The query searches chrom, the decimal position, id and info. REF, ALT and
// FILTER are deliberately outside the search scope; the pass-only toggle is
// the only way to select on FILTER.
func Apply(set *vcf.RecordSet, c Criteria) *VisibleSet {
	visible := &VisibleSet{Total: set.Len()}
	if set == nil {
		return visible
	}
	if c.IsEmpty() {
		visible.Records = set.Records
		return visible
	}

	query := strings.ToLower(c.Query)
	visible.Records = make([]*vcf.Record, 0, len(set.Records))
	for _, r := range set.Records {
		if c.PassOnly && !r.IsPass() {
			continue
		}
		if query != "" && !matches(r, query) {
			continue
		}
		visible.Records = append(visible.Records, r)
	}
	return visible
}

// matches reports whether any searchable field of r contains the
// already-lowercased query.
func matches(r *vcf.Record, query string) bool {
	return strings.Contains(strings.ToLower(r.Chrom), query) ||
		strings.Contains(strconv.FormatInt(r.Pos, 10), query) ||
		strings.Contains(strings.ToLower(r.ID), query) ||
		strings.Contains(strings.ToLower(r.Info), query)
}
