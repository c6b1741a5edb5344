package vcf

import "testing"

func TestRecord_IsPass(t *testing.T) {
	cases := []struct {
		filter string
		want   bool
	}{
		{"PASS", true},
		{"pass", false},
		{"Pass", false},
		{"q10", false},
		{"q10;s50", false},
		{"", false},
	}
	for _, c := range cases {
		r := &Record{Filter: c.filter}
		if got := r.IsPass(); got != c.want {
			t.Errorf("IsPass() with filter %q = %v, want %v", c.filter, got, c.want)
		}
	}
}

func TestRecord_VariantClass(t *testing.T) {
	snv := &Record{Ref: "A", Alt: "G"}
	if !snv.IsSNV() {
		t.Error("A>G should be an SNV")
	}
	if snv.IsIndel() {
		t.Error("A>G should not be an indel")
	}

	del := &Record{Ref: "ACT", Alt: "A"}
	if del.IsSNV() {
		t.Error("ACT>A should not be an SNV")
	}
	if !del.IsIndel() {
		t.Error("ACT>A should be an indel")
	}
}

func TestRecordSet_Len(t *testing.T) {
	var nilSet *RecordSet
	if nilSet.Len() != 0 {
		t.Error("nil set should have length 0")
	}

	set := &RecordSet{Records: []*Record{{Chrom: "1"}, {Chrom: "2"}}}
	if set.Len() != 2 {
		t.Errorf("Expected length 2, got %d", set.Len())
	}
}
