package tidy

import (
	"strings"
	"testing"
)

func TestReadStrata(t *testing.T) {
	strata, err := ReadStrata(strings.NewReader("INDIVIDUALS\tSTRATA\nI1\tPOP_A\nI2\tPOP_B\n"), '\t')
	if err != nil {
		t.Fatal(err)
	}
	if len(strata) != 2 || strata["I1"] != "POP_A" || strata["I2"] != "POP_B" {
		t.Fatalf("Unexpected strata %v", strata)
	}

	if _, err := ReadStrata(strings.NewReader("INDIVIDUALS\tSTRATA\nI1\tPOP_A\nI1\tPOP_B\n"), '\t'); err == nil {
		t.Fatal("Expected an error for an individual in two strata")
	}
}

func TestApplyStrata(t *testing.T) {
	tbl := &Table{
		Columns: []string{ColMarkers, ColIndividuals, ColGT},
		Rows: []Record{
			{Markers: "M1", Individuals: "I1", GT: "001001"},
			{Markers: "M1", Individuals: "I2", GT: "001002"},
			{Markers: "M1", Individuals: "I3", GT: "002002"},
		},
	}

	out := ApplyStrata(tbl, map[string]string{"I1": "A", "I3": "B"})
	if !out.Has(ColPopID) {
		t.Fatal("Expected POP_ID to be added")
	}
	if len(out.Rows) != 2 || out.Rows[0].PopID != "A" || out.Rows[1].PopID != "B" {
		t.Fatalf("Unexpected rows %+v", out.Rows)
	}
	if tbl.Has(ColPopID) || tbl.Rows[0].PopID != "" {
		t.Fatal("ApplyStrata modified its input")
	}
}
