package tidy

import (
	"strings"
	"testing"
)

const testVCF = `##fileformat=VCFv4.2
##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype">
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO	FORMAT	S1	S2
1	100	rs1	A	G	50	PASS	.	GT	0/1	./.
2	200	.	C	T	50	PASS	.	GT	1|1	0/0
`

func TestReadVCF(t *testing.T) {
	tbl, err := ReadVCF(strings.NewReader(testVCF), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows) != 4 {
		t.Fatalf("Expected 4 genotypes, got %d", len(tbl.Rows))
	}

	expected := []Record{
		{Markers: "rs1", Chrom: "1", Locus: "rs1", Pos: "100", Individuals: "S1", PopID: UnknownPopulation, GT: "001002", GTVCF: "0/1"},
		{Markers: "rs1", Chrom: "1", Locus: "rs1", Pos: "100", Individuals: "S2", PopID: UnknownPopulation, GT: MissingGT, GTVCF: MissingGTVCF},
		{Markers: "2:200", Chrom: "2", Locus: "", Pos: "200", Individuals: "S1", PopID: UnknownPopulation, GT: "002002", GTVCF: "1|1"},
		{Markers: "2:200", Chrom: "2", Locus: "", Pos: "200", Individuals: "S2", PopID: UnknownPopulation, GT: "001001", GTVCF: "0/0"},
	}
	for i, rec := range tbl.Rows {
		e := expected[i]
		if rec.Markers != e.Markers || rec.Chrom != e.Chrom || rec.Locus != e.Locus || rec.Pos != e.Pos ||
			rec.Individuals != e.Individuals || rec.PopID != e.PopID || rec.GT != e.GT || rec.GTVCF != e.GTVCF {
			t.Fatalf("Row %d:\nGot: %+v\nExpected: %+v\n", i, rec, e)
		}
	}
}

func TestReadVCFStrata(t *testing.T) {
	tbl, err := ReadVCF(strings.NewReader(testVCF), map[string]string{"S2": "POP_B"})
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("Expected 2 genotypes, got %d", len(tbl.Rows))
	}
	for _, rec := range tbl.Rows {
		if rec.Individuals != "S2" || rec.PopID != "POP_B" {
			t.Fatalf("Unexpected row %+v", rec)
		}
	}
}

func TestIsVCFPath(t *testing.T) {
	for path, expected := range map[string]bool{
		"data/populations.snps.vcf":  true,
		"gs://bucket/batch_1.vcf.gz": true,
		"~/radseq/tidy.tsv":          false,
		"batch_1.vcf.tsv":            false,
		"batch_1.haplotypes.VCF.bz2": true,
	} {
		if got := IsVCFPath(path); got != expected {
			t.Fatalf("%s: got %v, expected %v", path, got, expected)
		}
	}
}
