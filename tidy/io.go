package tidy

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadTable parses a delimited tidy table with a header row. Column names are
// normalized before any record is read.
func ReadTable(r io.Reader, delim rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("tidy table has no header: %w", ErrMissingInput)
	} else if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t, err := NewTable(header...)
	if err != nil {
		return nil, err
	}
	names, err := NormalizeHeader(header)
	if err != nil {
		return nil, err
	}

	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		rec := Record{}
		for i, value := range row {
			if err := rec.set(names[i], value, t.Extra); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		t.Rows = append(t.Rows, rec)
	}

	return t, nil
}

func (rec *Record) set(col, value string, extra []string) error {
	switch col {
	case ColMarkers:
		rec.Markers = value
	case ColIndividuals:
		rec.Individuals = value
	case ColPopID:
		rec.PopID = value
	case ColChrom:
		rec.Chrom = value
	case ColLocus:
		rec.Locus = value
	case ColPos:
		rec.Pos = value
	case ColGT:
		rec.GT = value
	case ColGTVCF:
		rec.GTVCF = value
	case ColGTBin:
		v, err := ParseGTBin(value)
		if err != nil {
			return err
		}
		rec.GTBin = v
	default:
		if rec.Extra == nil {
			rec.Extra = make([]string, len(extra))
		}
		for i, name := range extra {
			if name == col {
				rec.Extra[i] = value
				return nil
			}
		}
	}

	return nil
}

func (rec Record) get(col string, extra []string) string {
	switch col {
	case ColMarkers:
		return rec.Markers
	case ColIndividuals:
		return rec.Individuals
	case ColPopID:
		return rec.PopID
	case ColChrom:
		return rec.Chrom
	case ColLocus:
		return rec.Locus
	case ColPos:
		return rec.Pos
	case ColGT:
		return rec.GT
	case ColGTVCF:
		return rec.GTVCF
	case ColGTBin:
		return FormatGTBin(rec.GTBin)
	}

	for i, name := range extra {
		if name == col && i < len(rec.Extra) {
			return rec.Extra[i]
		}
	}

	return ""
}

// WriteTable writes the table with a header row, canonical columns first.
func WriteTable(w io.Writer, t *Table, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	header := t.Header()
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, rec := range t.Rows {
		for i, col := range header {
			row[i] = rec.get(col, t.Extra)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
