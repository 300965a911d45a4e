package tidy

import "errors"

var (
	// ErrMissingInput is returned when a required argument or column is
	// absent. It is raised before any computation takes place.
	ErrMissingInput = errors.New("missing input")

	// ErrInvalidGenotypeEncoding is returned when genotypes cannot be
	// interpreted as required: malformed codes, non-biallelic data where
	// biallelic data is needed, or inconsistent marker metadata.
	ErrInvalidGenotypeEncoding = errors.New("invalid genotype encoding")
)
