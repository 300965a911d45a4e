package tidy

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCompressedWithStrata(t *testing.T) {
	dir := t.TempDir()

	tablePath := filepath.Join(dir, "tidy.tsv.gz")
	f, err := os.Create(tablePath)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("LOCUS\tINDIVIDUALS\tGENOTYPE\nM1\tI1\t001002\nM1\tI2\t002002\nM1\tI3\t001001\n")); err != nil {
		t.Fatal(err)
	}
	zw.Close()
	f.Close()

	strataPath := filepath.Join(dir, "strata.tsv")
	if err := os.WriteFile(strataPath, []byte("INDIVIDUALS\tSTRATA\nI1\tNORTH\nI3\tSOUTH\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(tablePath, nil, LoadOptions{Delimiter: '\t', StrataPath: strataPath})
	if err != nil {
		t.Fatal(err)
	}
	if !tbl.Has(ColMarkers) || !tbl.Has(ColGT) || !tbl.Has(ColPopID) {
		t.Fatalf("Unexpected columns %v", tbl.Columns)
	}
	if len(tbl.Rows) != 2 || tbl.Rows[0].PopID != "NORTH" || tbl.Rows[1].Individuals != "I3" || tbl.Rows[1].PopID != "SOUTH" {
		t.Fatalf("Unexpected rows %+v", tbl.Rows)
	}
}

func TestLoadGSWithoutClient(t *testing.T) {
	if _, err := Load("gs://bucket/tidy.tsv", nil, LoadOptions{}); err == nil {
		t.Fatal("Expected an error for a gs:// path without a client")
	}
}
