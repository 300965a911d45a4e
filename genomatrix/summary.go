package genomatrix

import (
	"math"

	"github.com/carbocation/radtidy/hwe"
	"gonum.org/v1/gonum/stat"
)

// MarkerSummary describes the genotypes observed at one matrix column.
type MarkerSummary struct {
	Markers    string  `csv:"MARKERS"`
	Chrom      string  `csv:"CHROM"`
	NGenotyped int64   `csv:"N_GENOTYPED"`
	NMissing   int     `csv:"N_MISSING"`
	HomRef     int64   `csv:"HOM_REF"`
	Het        int64   `csv:"HET"`
	HomAlt     int64   `csv:"HOM_ALT"`
	AltFreq    float64 `csv:"ALT_FREQ"`
	HWEP       float64 `csv:"HWE_P"`
}

// Summarize computes genotype counts, the alternate allele frequency and a
// Hardy-Weinberg P value for every marker. The exact test is only run where
// the chi square approximation falls below hweCutoff. Markers without any
// genotype have a NaN frequency and a P value of 1.
func Summarize(m *Matrix, hweCutoff float64) []MarkerSummary {
	nrow, ncol := m.Dims()
	out := make([]MarkerSummary, ncol)

	called := make([]float64, 0, nrow)
	for j := 0; j < ncol; j++ {
		called = called[:0]
		for _, d := range m.Column(j) {
			if !math.IsNaN(d) {
				called = append(called, d)
			}
		}

		counts := hwe.FromDosage(called)
		freq := math.NaN()
		if len(called) > 0 {
			freq = stat.Mean(called, nil) / 2
		}

		out[j] = MarkerSummary{
			Markers:    m.LocNames[j],
			Chrom:      m.Chromosome[j],
			NGenotyped: counts.N(),
			NMissing:   nrow - len(called),
			HomRef:     counts.HomRef(),
			Het:        counts.Het(),
			HomAlt:     counts.HomAlt(),
			AltFreq:    freq,
			HWEP:       counts.Fast(hweCutoff),
		}
	}

	return out
}
