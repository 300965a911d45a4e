package radtidy

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/guregu/null.v3"
)

// Map columns in the BIM file to their positions
const (
	Chromosome int = iota
	VariantID
	Morgans
	Coordinate
	Allele1
	Allele2
)

// MissingBIMValue is what PLINK expects in place of an unknown chromosome,
// coordinate or allele.
const MissingBIMValue = "0"

// BIMRow is one marker of a PLINK-style marker map.
type BIMRow struct {
	Chromosome string
	Coordinate null.Int // Labeled "position" by most applications
	VariantID  string   // The MARKERS identifier
	Allele1    string   // Can contain > 1 character
	Allele2    string   // Can contain > 1 character
	// Morgans is always written as 0
}

func (b BIMRow) fields() []string {
	out := make([]string, Allele2+1)
	out[Chromosome] = orMissing(b.Chromosome)
	out[VariantID] = b.VariantID
	out[Morgans] = MissingBIMValue
	out[Coordinate] = MissingBIMValue
	if b.Coordinate.Valid {
		out[Coordinate] = fmt.Sprintf("%d", b.Coordinate.Int64)
	}
	out[Allele1] = orMissing(b.Allele1)
	out[Allele2] = orMissing(b.Allele2)

	return out
}

// WriteBIM writes rows as a tab-delimited, headerless .bim marker map.
func WriteBIM(w io.Writer, rows []BIMRow) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		cols := row.fields()
		for i, col := range cols {
			if i > 0 {
				if err := bw.WriteByte('\t'); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(col); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func orMissing(s string) string {
	if s == "" {
		return MissingBIMValue
	}
	return s
}
