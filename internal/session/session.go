// Package session owns the viewer's mutable state: the loaded record set,
// the current filter criteria and the derived visible set. Keeping all three
// behind explicit update methods means no other layer holds ambient mutable
// fields of its own.
package session

import (
	"github.com/progen-bio/vcfview/internal/filter"
	"github.com/progen-bio/vcfview/internal/vcf"
)

// Session is the single state holder for one viewer instance.
// It is not safe for concurrent use; the event loop is its only writer.
type Session struct {
	records  *vcf.RecordSet
	criteria filter.Criteria
	visible  *filter.VisibleSet
}

// New returns an empty session.
func New() *Session {
	return &Session{visible: &filter.VisibleSet{}}
}

// SetRecords replaces the record set wholesale and recomputes the visible
// set. A failed load must not call this; the previous set stays on screen.
func (s *Session) SetRecords(set *vcf.RecordSet) {
	s.records = set
	s.refresh()
}

// SetQuery updates the free-text query and recomputes the visible set.
func (s *Session) SetQuery(query string) {
	s.criteria.Query = query
	s.refresh()
}

// SetPassOnly updates the pass-only toggle and recomputes the visible set.
func (s *Session) SetPassOnly(passOnly bool) {
	s.criteria.PassOnly = passOnly
	s.refresh()
}

func (s *Session) refresh() {
	s.visible = filter.Apply(s.records, s.criteria)
}

// Records returns the currently loaded record set, which may be nil.
func (s *Session) Records() *vcf.RecordSet {
	return s.records
}

// Criteria returns the current filter input state.
func (s *Session) Criteria() filter.Criteria {
	return s.criteria
}

// Visible returns the current visible set. Never nil.
func (s *Session) Visible() *filter.VisibleSet {
	return s.visible
}

// Counts returns the visible and total record counts.
func (s *Session) Counts() (visible, total int) {
	return s.visible.Len(), s.records.Len()
}
