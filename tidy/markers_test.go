package tidy

import (
	"bytes"
	"errors"
	"testing"
)

func TestMarkerMetadataSorted(t *testing.T) {
	tbl := &Table{
		Columns: []string{ColMarkers, ColChrom, ColLocus, ColPos},
		Rows: []Record{
			{Markers: "M3", Chrom: "2", Locus: "L3", Pos: "30"},
			{Markers: "M1", Chrom: "1", Locus: "L1", Pos: "10"},
			{Markers: "M3", Chrom: "2", Locus: "L3", Pos: "30"},
			{Markers: "M2", Chrom: "1", Locus: "L2", Pos: "20"},
		},
	}

	meta, err := MarkerMetadata(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if len(meta) != 3 {
		t.Fatalf("Expected 3 markers, got %+v", meta)
	}
	for i, expected := range []MarkerInfo{
		{"M1", "1", "L1", "10"},
		{"M2", "1", "L2", "20"},
		{"M3", "2", "L3", "30"},
	} {
		if meta[i] != expected {
			t.Fatalf("Position %d: got %+v, expected %+v", i, meta[i], expected)
		}
	}
}

func TestMarkerMetadataConflict(t *testing.T) {
	tbl := &Table{
		Columns: []string{ColMarkers, ColChrom, ColPos},
		Rows: []Record{
			{Markers: "M1", Chrom: "1", Pos: "10"},
			{Markers: "M1", Chrom: "1", Pos: "11"},
		},
	}

	if _, err := MarkerMetadata(tbl); !errors.Is(err, ErrInvalidGenotypeEncoding) {
		t.Fatalf("Expected ErrInvalidGenotypeEncoding, got %v", err)
	}
}

func TestWriteMarkers(t *testing.T) {
	markers := []MarkerInfo{{"M1", "1", "L1", "10"}}

	var buf bytes.Buffer
	if err := WriteMarkers(&buf, markers, false, '\t'); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "MARKERS\nM1\n" {
		t.Fatalf("Got %q", buf.String())
	}

	buf.Reset()
	if err := WriteMarkers(&buf, markers, true, '\t'); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "MARKERS\tCHROM\tLOCUS\tPOS\nM1\t1\tL1\t10\n" {
		t.Fatalf("Got %q", buf.String())
	}
}
