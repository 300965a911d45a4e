package genomatrix

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/radtidy/tidy"
	"github.com/gocarina/gocsv"
)

// WriteDosage writes one row per individual: INDIVIDUALS, POP_ID, then one
// dosage per marker, with NA for missing genotypes.
func WriteDosage(w io.Writer, m *Matrix, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	header := append([]string{tidy.ColIndividuals, tidy.ColPopID}, m.LocNames...)
	if err := cw.Write(header); err != nil {
		return err
	}

	nrow, ncol := m.Dims()
	line := make([]string, 2+ncol)
	for i := 0; i < nrow; i++ {
		line[0] = m.IndNames[i]
		line[1] = m.Pop[i]
		for j := 0; j < ncol; j++ {
			line[2+j] = tidy.FormatGTBin(m.At(i, j))
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummary writes marker summaries as a table with a header.
func WriteSummary(w io.Writer, rows []MarkerSummary, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}
