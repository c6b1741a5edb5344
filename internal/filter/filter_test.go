package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progen-bio/vcfview/internal/vcf"
)

func testSet() *vcf.RecordSet {
	return &vcf.RecordSet{
		Records: []*vcf.Record{
			{Chrom: "chr1", Pos: 100, ID: "rs123", Ref: "A", Alt: "G", Filter: "PASS", Info: "DP=10"},
			{Chrom: "chr1", Pos: 2005, ID: ".", Ref: "C", Alt: "T", Filter: "q10", Info: "DP=20;DB"},
			{Chrom: "chr2", Pos: 300, ID: "rs456", Ref: "G", Alt: "A", Filter: "PASS", Info: "AF=0.5"},
			{Chrom: "chrX", Pos: 400, ID: "rs789", Ref: "T", Alt: "C", Filter: "s50;q10", Info: "DP=30"},
		},
	}
}

func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.False(t, Criteria{Query: "chr"}.IsEmpty())
	assert.False(t, Criteria{PassOnly: true}.IsEmpty())
}

func TestApply_EmptyCriteria(t *testing.T) {
	set := testSet()
	visible := Apply(set, Criteria{})

	require.Equal(t, set.Len(), visible.Len())
	assert.Equal(t, set.Len(), visible.Total)
	assert.Equal(t, set.Records, visible.Records)
}

func TestApply_PassOnly(t *testing.T) {
	visible := Apply(testSet(), Criteria{PassOnly: true})

	require.Equal(t, 2, visible.Len())
	for _, r := range visible.Records {
		assert.Equal(t, "PASS", r.Filter)
	}
}

func TestApply_CaseInsensitiveQuery(t *testing.T) {
	visible := Apply(testSet(), Criteria{Query: "CHR1"})
	assert.Equal(t, 2, visible.Len())

	visible = Apply(testSet(), Criteria{Query: "RS456"})
	require.Equal(t, 1, visible.Len())
	assert.Equal(t, "chr2", visible.Records[0].Chrom)
}

func TestApply_QueryMatchesPosAndInfo(t *testing.T) {
	// "200" is a substring of pos 2005
	visible := Apply(testSet(), Criteria{Query: "200"})
	require.Equal(t, 1, visible.Len())
	assert.EqualValues(t, 2005, visible.Records[0].Pos)

	visible = Apply(testSet(), Criteria{Query: "af=0.5"})
	assert.Equal(t, 1, visible.Len())
}

func TestApply_RefAltFilterOutsideSearchScope(t *testing.T) {
	set := testSet()

	// Every REF/ALT letter appears somewhere, but none of these queries may
	// match via REF or ALT alone.
	visible := Apply(set, Criteria{Query: "q10"})
	assert.Equal(t, 0, visible.Len(), "FILTER must not be searchable")

	single := &vcf.RecordSet{Records: []*vcf.Record{
		{Chrom: "7", Pos: 1, ID: ".", Ref: "GATTACA", Alt: "TTT", Filter: "PASS", Info: "DP=1"},
	}}
	assert.Equal(t, 0, Apply(single, Criteria{Query: "gattaca"}).Len(), "REF must not be searchable")
	assert.Equal(t, 0, Apply(single, Criteria{Query: "ttt"}).Len(), "ALT must not be searchable")
}

func TestApply_BothConditionsMustHold(t *testing.T) {
	visible := Apply(testSet(), Criteria{Query: "chr1", PassOnly: true})

	require.Equal(t, 1, visible.Len())
	assert.EqualValues(t, 100, visible.Records[0].Pos)
}

func TestApply_Idempotence(t *testing.T) {
	criteria := []Criteria{
		{},
		{PassOnly: true},
		{Query: "chr"},
		{Query: "rs", PassOnly: true},
	}

	for _, c := range criteria {
		once := Apply(testSet(), c)
		twice := Apply(&vcf.RecordSet{Records: once.Records}, c)
		assert.Equal(t, once.Records, twice.Records, "criteria %+v", c)
	}
}

func TestApply_Monotonicity(t *testing.T) {
	set := testSet()

	base := Apply(set, Criteria{Query: "chr"})
	narrowed := Apply(set, Criteria{Query: "chr1"})
	assert.LessOrEqual(t, narrowed.Len(), base.Len(), "superstring query must not grow the set")

	passOnly := Apply(set, Criteria{Query: "chr", PassOnly: true})
	assert.LessOrEqual(t, passOnly.Len(), base.Len(), "pass-only must not grow the set")
}

func TestApply_OrderPreservation(t *testing.T) {
	set := testSet()
	visible := Apply(set, Criteria{Query: "chr"})

	// VisibleSet must be a subsequence of the input order
	idx := 0
	for _, r := range visible.Records {
		found := false
		for ; idx < len(set.Records); idx++ {
			if set.Records[idx] == r {
				found = true
				idx++
				break
			}
		}
		require.True(t, found, "visible records out of source order")
	}
}

func TestApply_NilSet(t *testing.T) {
	visible := Apply(nil, Criteria{Query: "x"})
	assert.Equal(t, 0, visible.Len())
	assert.Equal(t, 0, visible.Total)
}

func TestVisibleSet_At(t *testing.T) {
	visible := Apply(testSet(), Criteria{})

	require.NotNil(t, visible.At(0))
	assert.Nil(t, visible.At(-1))
	assert.Nil(t, visible.At(visible.Len()))
}
