package tidy

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

type strataRow struct {
	Individuals string `csv:"INDIVIDUALS"`
	Strata      string `csv:"STRATA"`
}

// ReadStrata reads a two-column INDIVIDUALS / STRATA file into a map from
// individual to population.
func ReadStrata(r io.Reader, delim rune) (map[string]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.LazyQuotes = true

	rows := []*strataRow{}
	if err := gocsv.UnmarshalCSV(cr, &rows); err != nil {
		return nil, fmt.Errorf("strata: %s: %w", err, ErrMissingInput)
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.Individuals == "" {
			continue
		}
		if prior, exists := out[row.Individuals]; exists && prior != row.Strata {
			return nil, fmt.Errorf("strata: individual %s is assigned to both %s and %s", row.Individuals, prior, row.Strata)
		}
		out[row.Individuals] = row.Strata
	}

	return out, nil
}

// ApplyStrata returns a copy of t in which POP_ID comes from strata.
// Individuals that strata does not mention are left out.
func ApplyStrata(t *Table, strata map[string]string) *Table {
	out := t.Subset(func(rec Record) bool {
		_, exists := strata[rec.Individuals]
		return exists
	})
	for i := range out.Rows {
		out.Rows[i].PopID = strata[out.Rows[i].Individuals]
	}
	if !out.Has(ColPopID) {
		out.Columns = append(out.Columns, ColPopID)
	}

	return out
}
