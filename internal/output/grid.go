// Package output renders records for the table grid and the detail pane.
package output

import (
	"strconv"

	"github.com/progen-bio/vcfview/internal/vcf"
)

// Alignment is the horizontal alignment of a grid column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one fixed grid column.
type Column struct {
	Title string
	Width int
	Align Alignment
}

// Column indices, matching the VCF column order.
const (
	ColChrom = iota
	ColPos
	ColID
	ColRef
	ColAlt
	ColQual
	ColFilter
	ColInfo
)

// Columns returns the fixed grid columns. Numeric columns (POS, QUAL) are
// right-aligned; INFO gets whatever width remains.
func Columns() []Column {
	return []Column{
		{Title: "CHROM", Width: 8, Align: AlignLeft},
		{Title: "POS", Width: 10, Align: AlignRight},
		{Title: "ID", Width: 10, Align: AlignLeft},
		{Title: "REF", Width: 5, Align: AlignLeft},
		{Title: "ALT", Width: 5, Align: AlignLeft},
		{Title: "QUAL", Width: 7, Align: AlignRight},
		{Title: "FILTER", Width: 8, Align: AlignLeft},
		{Title: "INFO", Width: 40, Align: AlignLeft},
	}
}

// CellText renders one cell. Absent ID renders as "."; QUAL renders rounded
// to two decimals or "." when absent; everything else is its stored string.
func CellText(r *vcf.Record, col int) string {
	switch col {
	case ColChrom:
		return r.Chrom
	case ColPos:
		return strconv.FormatInt(r.Pos, 10)
	case ColID:
		if r.ID == "" {
			return "."
		}
		return r.ID
	case ColRef:
		return r.Ref
	case ColAlt:
		return r.Alt
	case ColQual:
		if !r.HasQual {
			return "."
		}
		return strconv.FormatFloat(r.Qual, 'f', 2, 64)
	case ColFilter:
		return r.Filter
	case ColInfo:
		return r.Info
	default:
		return ""
	}
}

// Row renders all cells of one record in column order.
func Row(r *vcf.Record) []string {
	cells := make([]string, len(Columns()))
	for col := range cells {
		cells[col] = CellText(r, col)
	}
	return cells
}
