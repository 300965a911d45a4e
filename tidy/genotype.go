package tidy

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

const (
	// MissingGT marks an ungenotyped six-character GT value
	MissingGT = "000000"

	// MissingAllele is the allele code carried by a missing genotype
	MissingAllele = "000"

	// MissingGTVCF marks an ungenotyped GT_VCF value
	MissingGTVCF = "./."

	alleleWidth = 3
)

// SplitGT decomposes a six-character genotype into its two three-character
// allele codes.
func SplitGT(gt string) (string, string, error) {
	if len(gt) != 2*alleleWidth {
		return "", "", fmt.Errorf("genotype %q is not two %d-character allele codes: %w", gt, alleleWidth, ErrInvalidGenotypeEncoding)
	}

	return gt[:alleleWidth], gt[alleleWidth:], nil
}

// JoinGT builds a six-character genotype from two allele indices, where 0 is
// the first (reference) allele. A negative index yields MissingGT.
func JoinGT(a1, a2 int) string {
	if a1 < 0 || a2 < 0 {
		return MissingGT
	}
	return fmt.Sprintf("%03d%03d", a1+1, a2+1)
}

// SplitGTVCF returns the two allele fields of a VCF-style genotype ("a/b" or
// the phased "a|b"). missing is true for "./." and its phased equivalent.
func SplitGTVCF(gt string) (a1, a2 string, missing bool, err error) {
	sep := "/"
	if strings.Contains(gt, "|") {
		sep = "|"
	}
	parts := strings.Split(gt, sep)
	if len(parts) != 2 {
		return "", "", false, fmt.Errorf("VCF genotype %q is not diploid: %w", gt, ErrInvalidGenotypeEncoding)
	}
	if parts[0] == "." || parts[1] == "." {
		return parts[0], parts[1], true, nil
	}

	return parts[0], parts[1], false, nil
}

// ParseGTBin parses a dosage value. Empty strings and NA are missing.
func ParseGTBin(value string) (null.Int, error) {
	switch value {
	case "", "NA", ".":
		return null.Int{}, nil
	}

	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return null.Int{}, fmt.Errorf("GT_BIN value %q: %w", value, ErrInvalidGenotypeEncoding)
	}

	return null.IntFrom(v), nil
}

// FormatGTBin is the inverse of ParseGTBin.
func FormatGTBin(v null.Int) string {
	if !v.Valid {
		return "NA"
	}
	return strconv.FormatInt(v.Int64, 10)
}
