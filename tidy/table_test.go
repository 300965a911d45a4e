package tidy

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	for _, v := range []struct {
		In       []string
		Expected []string
	}{
		{[]string{"LOCUS", "INDIVIDUALS", "GENOTYPE"}, []string{"MARKERS", "INDIVIDUALS", "GT"}},
		{[]string{"MARKERS", "LOCUS", "GT"}, []string{"MARKERS", "LOCUS", "GT"}},
		{[]string{"MARKERS", "GENOTYPE", "GT"}, []string{"MARKERS", "GENOTYPE", "GT"}},
	} {
		got, err := NormalizeHeader(v.In)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Join(got, ",") != strings.Join(v.Expected, ",") {
			t.Fatalf("\nInput: %v\nGot: %v\nExpected: %v\n", v.In, got, v.Expected)
		}
	}

	if _, err := NormalizeHeader([]string{"GT", "GT"}); err == nil {
		t.Fatal("Expected an error for a duplicated column")
	}
}

func TestReadWriteTable(t *testing.T) {
	input := strings.Join([]string{
		"LOCUS\tINDIVIDUALS\tPOP_ID\tGENOTYPE\tREAD_DEPTH\tGT_BIN",
		"M1\tI1\tP1\t001002\t12\t1",
		"M1\tI2\tP1\t000000\t0\tNA",
	}, "\n") + "\n"

	tbl, err := ReadTable(strings.NewReader(input), '\t')
	if err != nil {
		t.Fatal(err)
	}
	if !tbl.Has(ColMarkers) || !tbl.Has(ColGT) || tbl.Has(ColLocus) {
		t.Fatalf("Unexpected columns %v", tbl.Columns)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(tbl.Rows))
	}
	if r := tbl.Rows[0]; r.Markers != "M1" || r.GT != "001002" || r.Extra[0] != "12" || !r.GTBin.Valid || r.GTBin.Int64 != 1 {
		t.Fatalf("Unexpected first row %+v", r)
	}
	if tbl.Rows[1].GTBin.Valid {
		t.Fatalf("Expected NA dosage to be missing, got %+v", tbl.Rows[1].GTBin)
	}

	var buf bytes.Buffer
	if err := WriteTable(&buf, tbl, '\t'); err != nil {
		t.Fatal(err)
	}
	expected := strings.Join([]string{
		"MARKERS\tINDIVIDUALS\tPOP_ID\tGT\tGT_BIN\tREAD_DEPTH",
		"M1\tI1\tP1\t001002\t1\t12",
		"M1\tI2\tP1\t000000\tNA\t0",
	}, "\n") + "\n"
	if buf.String() != expected {
		t.Fatalf("\nGot:\n%s\nExpected:\n%s", buf.String(), expected)
	}
}

func TestReadTableBadDosage(t *testing.T) {
	_, err := ReadTable(strings.NewReader("MARKERS\tGT_BIN\nM1\ttwo\n"), '\t')
	if !errors.Is(err, ErrInvalidGenotypeEncoding) {
		t.Fatalf("Expected ErrInvalidGenotypeEncoding, got %v", err)
	}
}

func TestReadTableEmpty(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""), '\t')
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("Expected ErrMissingInput, got %v", err)
	}
}

func TestSubsetDoesNotAlias(t *testing.T) {
	tbl := &Table{
		Columns: []string{ColMarkers},
		Extra:   []string{"NOTE"},
		Rows:    []Record{{Markers: "M1", Extra: []string{"a"}}},
	}
	clone := tbl.Clone()
	clone.Rows[0].Extra[0] = "b"
	clone.Rows[0].Markers = "M2"

	if tbl.Rows[0].Extra[0] != "a" || tbl.Rows[0].Markers != "M1" {
		t.Fatalf("Clone modified its source: %+v", tbl.Rows[0])
	}
}

func TestRequire(t *testing.T) {
	var nilTable *Table
	if err := nilTable.Require(ColMarkers); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("Expected ErrMissingInput for a nil table, got %v", err)
	}

	tbl, err := NewTable("MARKERS", "GT")
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.Require(ColMarkers, ColGT); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Require(ColIndividuals); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("Expected ErrMissingInput, got %v", err)
	}
}
