package genomatrix

import (
	"fmt"

	"github.com/carbocation/radtidy/tidy"
	"gopkg.in/guregu/null.v3"
)

// vcfDosage maps unphased VCF genotypes to the number of alternate alleles.
var vcfDosage = map[string]null.Int{
	"0/0": null.IntFrom(0),
	"0/1": null.IntFrom(1),
	"1/0": null.IntFrom(1),
	"1/1": null.IntFrom(2),
	"./.": {},
}

// DosageFromVCF converts a biallelic VCF genotype to a dosage. Phased
// genotypes are accepted. Anything else, such as a second alternate allele, is
// an ErrInvalidGenotypeEncoding.
func DosageFromVCF(gt string) (null.Int, error) {
	a1, a2, missing, err := tidy.SplitGTVCF(gt)
	if err != nil {
		return null.Int{}, err
	}
	if missing {
		return null.Int{}, nil
	}

	d, exists := vcfDosage[a1+"/"+a2]
	if !exists {
		return null.Int{}, fmt.Errorf("VCF genotype %q is not biallelic: %w", gt, tidy.ErrInvalidGenotypeEncoding)
	}

	return d, nil
}

// dosageSource picks how each record's dosage is read.
func dosageSource(t *tidy.Table) (func(tidy.Record) (null.Int, error), error) {
	switch {
	case t.Has(tidy.ColGTBin):
		return func(rec tidy.Record) (null.Int, error) {
			if rec.GTBin.Valid && (rec.GTBin.Int64 < 0 || rec.GTBin.Int64 > 2) {
				return null.Int{}, fmt.Errorf("GT_BIN %d for %s/%s is not a biallelic dosage: %w", rec.GTBin.Int64, rec.Markers, rec.Individuals, tidy.ErrInvalidGenotypeEncoding)
			}
			return rec.GTBin, nil
		}, nil
	case t.Has(tidy.ColGTVCF):
		return func(rec tidy.Record) (null.Int, error) {
			return DosageFromVCF(rec.GTVCF)
		}, nil
	}

	return nil, fmt.Errorf("a %s or %s column is required: %w", tidy.ColGTBin, tidy.ColGTVCF, tidy.ErrInvalidGenotypeEncoding)
}
