package tidy

import (
	"fmt"
	"sort"

	"gopkg.in/guregu/null.v3"
)

// Canonical column names of a tidy genotype table
const (
	ColMarkers     = "MARKERS"
	ColIndividuals = "INDIVIDUALS"
	ColPopID       = "POP_ID"
	ColChrom       = "CHROM"
	ColLocus       = "LOCUS"
	ColPos         = "POS"
	ColGT          = "GT"
	ColGTVCF       = "GT_VCF"
	ColGTBin       = "GT_BIN"

	// Accepted on input only, renamed during normalization
	colGenotype = "GENOTYPE"
)

var canonical = map[string]bool{
	ColMarkers:     true,
	ColIndividuals: true,
	ColPopID:       true,
	ColChrom:       true,
	ColLocus:       true,
	ColPos:         true,
	ColGT:          true,
	ColGTVCF:       true,
	ColGTBin:       true,
}

// Record is one (marker, individual) genotype observation.
type Record struct {
	Markers     string
	Individuals string
	PopID       string
	Chrom       string
	Locus       string
	Pos         string
	GT          string
	GTVCF       string
	GTBin       null.Int

	// Values of the non-canonical columns, aligned with Table.Extra
	Extra []string
}

// Table is a long-format genotype table. Columns lists the canonical columns
// that are present, in the order they were read. Non-canonical columns are
// named in Extra and carried through untouched.
type Table struct {
	Columns []string
	Extra   []string
	Rows    []Record
}

// NewTable creates an empty table with the given columns. Names are
// normalized the same way a file header is.
func NewTable(columns ...string) (*Table, error) {
	normalized, err := NormalizeHeader(columns)
	if err != nil {
		return nil, err
	}

	t := &Table{}
	for _, col := range normalized {
		if canonical[col] {
			t.Columns = append(t.Columns, col)
		} else {
			t.Extra = append(t.Extra, col)
		}
	}

	return t, nil
}

// NormalizeHeader renames GENOTYPE to GT, and LOCUS to MARKERS when no MARKERS
// column exists. It runs once, when a table enters the package, so that all
// downstream logic only ever sees canonical names.
func NormalizeHeader(header []string) ([]string, error) {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	out := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, col := range header {
		switch {
		case col == colGenotype && !present[ColGT]:
			col = ColGT
		case col == ColLocus && !present[ColMarkers]:
			col = ColMarkers
		}

		if seen[col] {
			return nil, fmt.Errorf("column %s appears more than once", col)
		}
		seen[col] = true
		out[i] = col
	}

	return out, nil
}

// Has reports whether the canonical column col is present.
func (t *Table) Has(col string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Require returns ErrMissingInput naming the first absent column.
func (t *Table) Require(cols ...string) error {
	if t == nil {
		return fmt.Errorf("no genotype table provided: %w", ErrMissingInput)
	}
	for _, col := range cols {
		if !t.Has(col) {
			return fmt.Errorf("column %s is required: %w", col, ErrMissingInput)
		}
	}
	return nil
}

// Header returns all column names, canonical columns first.
func (t *Table) Header() []string {
	out := make([]string, 0, len(t.Columns)+len(t.Extra))
	out = append(out, t.Columns...)
	return append(out, t.Extra...)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return t.Subset(func(Record) bool { return true })
}

// Subset returns a new table with the same schema, holding copies of the
// records for which keep returns true. Row order is preserved.
func (t *Table) Subset(keep func(Record) bool) *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Extra:   append([]string(nil), t.Extra...),
		Rows:    make([]Record, 0, len(t.Rows)),
	}
	for _, rec := range t.Rows {
		if !keep(rec) {
			continue
		}
		rec.Extra = append([]string(nil), rec.Extra...)
		out.Rows = append(out.Rows, rec)
	}

	return out
}

// MarkerSet returns the distinct marker identifiers in the table.
func (t *Table) MarkerSet() map[string]struct{} {
	out := make(map[string]struct{})
	for _, rec := range t.Rows {
		out[rec.Markers] = struct{}{}
	}
	return out
}

// Markers returns the distinct marker identifiers, sorted.
func (t *Table) Markers() []string {
	set := t.MarkerSet()
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)

	return out
}
