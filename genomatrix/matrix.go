// Package genomatrix pivots a tidy genotype table into an individual by
// marker dosage matrix, along with the marker and individual metadata a
// genlight-style object needs.
package genomatrix

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"

	"github.com/carbocation/radtidy"
	"github.com/carbocation/radtidy/tidy"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/guregu/null.v3"
)

// Options controls Build.
type Options struct {
	// Biallelic, when set, asserts whether the data is biallelic. When nil,
	// Detector decides.
	Biallelic *bool

	// Detector defaults to DetectBiallelic.
	Detector BiallelicDetector

	Verbose bool
}

// Matrix is a dense individual by marker dosage matrix. Rows are sorted by
// population and then individual; columns by marker identifier. Missing
// dosages are NaN.
type Matrix struct {
	Dosage *mat.Dense

	// One entry per row
	IndNames []string
	Pop      []string

	// One entry per column
	LocNames   []string
	Chromosome []string
	Locus      []string
	Position   []null.Int
}

type individual struct {
	pop  string
	name string
}

// Build converts a tidy table into a Matrix. The data must be biallelic, and
// dosages come from GT_BIN when present or from GT_VCF otherwise.
func Build(t *tidy.Table, opts Options) (*Matrix, error) {
	if err := t.Require(tidy.ColMarkers, tidy.ColIndividuals, tidy.ColPopID); err != nil {
		return nil, err
	}
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("genotype table has no rows: %w", tidy.ErrMissingInput)
	}

	var biallelic bool
	if opts.Biallelic != nil {
		biallelic = *opts.Biallelic
	} else {
		detect := opts.Detector
		if detect == nil {
			detect = DetectBiallelic
		}
		biallelic = detect(t)
	}
	if !biallelic {
		return nil, fmt.Errorf("biallelic data required: %w", tidy.ErrInvalidGenotypeEncoding)
	}

	dosageOf, err := dosageSource(t)
	if err != nil {
		return nil, err
	}

	// A single sorted marker list orders both the matrix columns and the
	// metadata vectors.
	meta, err := tidy.MarkerMetadata(t)
	if err != nil {
		return nil, err
	}
	column := make(map[string]int, len(meta))
	for j, info := range meta {
		column[info.Markers] = j
	}

	inds := individuals(t)
	row := make(map[individual]int, len(inds))
	for i, ind := range inds {
		row[ind] = i
	}

	nrow, ncol := len(inds), len(meta)
	data := make([]float64, nrow*ncol)
	for i := range data {
		data[i] = math.NaN()
	}
	filled := make([]bool, nrow*ncol)

	for _, rec := range t.Rows {
		d, err := dosageOf(rec)
		if err != nil {
			return nil, err
		}

		cell := row[individual{pop: rec.PopID, name: rec.Individuals}]*ncol + column[rec.Markers]
		if filled[cell] {
			return nil, fmt.Errorf("individual %s (%s) has more than one genotype at marker %s: %w", rec.Individuals, rec.PopID, rec.Markers, tidy.ErrInvalidGenotypeEncoding)
		}
		filled[cell] = true

		if d.Valid {
			data[cell] = float64(d.Int64)
		}
	}

	m := &Matrix{
		Dosage:     mat.NewDense(nrow, ncol, data),
		IndNames:   make([]string, nrow),
		Pop:        make([]string, nrow),
		LocNames:   make([]string, ncol),
		Chromosome: make([]string, ncol),
		Locus:      make([]string, ncol),
		Position:   make([]null.Int, ncol),
	}
	for i, ind := range inds {
		m.IndNames[i] = ind.name
		m.Pop[i] = ind.pop
	}
	for j, info := range meta {
		m.LocNames[j] = info.Markers
		m.Chromosome[j] = info.Chrom
		m.Locus[j] = info.Locus
		if m.Position[j], err = parsePosition(info); err != nil {
			return nil, err
		}
	}

	if opts.Verbose {
		log.Printf("Built a %d individual by %d marker genotype matrix\n", nrow, ncol)
	}

	return m, nil
}

// individuals returns the distinct (POP_ID, INDIVIDUALS) pairs sorted by
// population and then name.
func individuals(t *tidy.Table) []individual {
	seen := make(map[individual]struct{})
	out := make([]individual, 0)
	for _, rec := range t.Rows {
		ind := individual{pop: rec.PopID, name: rec.Individuals}
		if _, exists := seen[ind]; exists {
			continue
		}
		seen[ind] = struct{}{}
		out = append(out, ind)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].pop != out[j].pop {
			return out[i].pop < out[j].pop
		}
		return out[i].name < out[j].name
	})

	return out
}

func parsePosition(info tidy.MarkerInfo) (null.Int, error) {
	if info.Pos == "" || info.Pos == "NA" {
		return null.Int{}, nil
	}
	pos, err := strconv.ParseInt(info.Pos, 10, 64)
	if err != nil {
		return null.Int{}, fmt.Errorf("marker %s has a non-numeric POS %q: %w", info.Markers, info.Pos, tidy.ErrInvalidGenotypeEncoding)
	}

	return null.IntFrom(pos), nil
}

// Dims returns the number of individuals and markers.
func (m *Matrix) Dims() (int, int) {
	return m.Dosage.Dims()
}

// At returns the dosage of individual i at marker j.
func (m *Matrix) At(i, j int) null.Int {
	v := m.Dosage.At(i, j)
	if math.IsNaN(v) {
		return null.Int{}
	}
	return null.IntFrom(int64(v))
}

// Column returns a copy of the dosages at marker j.
func (m *Matrix) Column(j int) []float64 {
	return mat.Col(nil, j, m.Dosage)
}

// MarkerMap describes the matrix columns as a PLINK marker map. Alleles are
// not known to a tidy table and are written as missing.
func (m *Matrix) MarkerMap() []radtidy.BIMRow {
	out := make([]radtidy.BIMRow, len(m.LocNames))
	for j := range m.LocNames {
		out[j] = radtidy.BIMRow{
			Chromosome: m.Chromosome[j],
			Coordinate: m.Position[j],
			VariantID:  m.LocNames[j],
		}
	}
	return out
}
