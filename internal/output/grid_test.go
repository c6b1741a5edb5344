package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progen-bio/vcfview/internal/vcf"
)

func TestColumns_FixedLayout(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, 8)

	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
	}
	assert.Equal(t, []string{"CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}, titles)

	assert.Equal(t, AlignRight, cols[ColPos].Align)
	assert.Equal(t, AlignRight, cols[ColQual].Align)
	assert.Equal(t, AlignLeft, cols[ColChrom].Align)
	assert.Equal(t, AlignLeft, cols[ColInfo].Align)
}

func TestCellText_RoundTrip(t *testing.T) {
	r := &vcf.Record{
		Chrom: "chr1", Pos: 100, ID: "rs123", Ref: "A", Alt: "G,C",
		Qual: 50.456, HasQual: true, Filter: "PASS", Info: "DP=10;AF=0.5",
	}

	// Parsed then rendered, all fields come back verbatim (qual to 2 decimals)
	assert.Equal(t, "chr1", CellText(r, ColChrom))
	assert.Equal(t, "100", CellText(r, ColPos))
	assert.Equal(t, "rs123", CellText(r, ColID))
	assert.Equal(t, "A", CellText(r, ColRef))
	assert.Equal(t, "G,C", CellText(r, ColAlt))
	assert.Equal(t, "50.46", CellText(r, ColQual))
	assert.Equal(t, "PASS", CellText(r, ColFilter))
	assert.Equal(t, "DP=10;AF=0.5", CellText(r, ColInfo))
}

func TestCellText_AbsentSentinels(t *testing.T) {
	r := &vcf.Record{Chrom: "chr1", Pos: 1, ID: "", Ref: "A", Alt: ".", Filter: "PASS", Info: "."}

	assert.Equal(t, ".", CellText(r, ColID), "empty id renders as .")
	assert.Equal(t, ".", CellText(r, ColQual), "absent qual renders as ., not 0.00")

	r.ID = "."
	assert.Equal(t, ".", CellText(r, ColID))
}

func TestRow_MatchesColumnOrder(t *testing.T) {
	r := &vcf.Record{Chrom: "7", Pos: 42, ID: "rs7", Ref: "T", Alt: "A", Qual: 9.5, HasQual: true, Filter: "q10", Info: "DB"}

	row := Row(r)
	require.Len(t, row, len(Columns()))
	assert.Equal(t, []string{"7", "42", "rs7", "T", "A", "9.50", "q10", "DB"}, row)
}
