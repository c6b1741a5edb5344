package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/progen-bio/vcfview/internal/vcf"
)

// Detail renders the fixed-layout detail block for one record: location,
// ref->alt, quality, filter, info, a separator, then the raw source line with
// tabs flattened to single spaces.
func Detail(r *vcf.Record) string {
	qual := "."
	if r.HasQual {
		qual = strconv.FormatFloat(r.Qual, 'g', -1, 64)
	}

	var b strings.Builder
	b.WriteString("=== Variant Details ===\n")
	fmt.Fprintf(&b, "Location: %s:%d\n", r.Chrom, r.Pos)
	fmt.Fprintf(&b, "Ref/Alt:  %s -> %s\n", r.Ref, r.Alt)
	fmt.Fprintf(&b, "Quality:  %s\n", qual)
	fmt.Fprintf(&b, "Filter:   %s\n", r.Filter)
	fmt.Fprintf(&b, "Info:     %s\n", r.Info)
	b.WriteString(strings.Repeat("-", 30) + "\n")
	b.WriteString("Raw Line:\n")
	b.WriteString(strings.ReplaceAll(r.Raw, "\t", " "))
	return b.String()
}
