package genomatrix

import (
	"github.com/carbocation/radtidy/tidy"
)

// BiallelicDetector decides whether a table holds only biallelic markers.
type BiallelicDetector func(t *tidy.Table) bool

// DetectBiallelic looks at the most informative genotype column available:
// with GT, no marker may carry more than two distinct allele codes; with
// GT_VCF, no allele index may exceed 1; with GT_BIN, every dosage must be 0, 1
// or 2. Malformed genotypes make a table non-biallelic.
func DetectBiallelic(t *tidy.Table) bool {
	switch {
	case t.Has(tidy.ColGT):
		alleles := make(map[string]map[string]struct{})
		for _, rec := range t.Rows {
			if rec.GT == tidy.MissingGT {
				continue
			}
			a1, a2, err := tidy.SplitGT(rec.GT)
			if err != nil {
				return false
			}
			set, exists := alleles[rec.Markers]
			if !exists {
				set = make(map[string]struct{}, 2)
				alleles[rec.Markers] = set
			}
			set[a1] = struct{}{}
			set[a2] = struct{}{}
			if len(set) > 2 {
				return false
			}
		}
		return true

	case t.Has(tidy.ColGTVCF):
		for _, rec := range t.Rows {
			if _, err := DosageFromVCF(rec.GTVCF); err != nil {
				return false
			}
		}
		return true

	case t.Has(tidy.ColGTBin):
		for _, rec := range t.Rows {
			if rec.GTBin.Valid && (rec.GTBin.Int64 < 0 || rec.GTBin.Int64 > 2) {
				return false
			}
		}
		return true
	}

	return false
}
