package tidy

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/carbocation/pfx"
	"github.com/carbocation/vcfgo"
)

const (
	BufferSize = 4096 * 8

	// UnknownPopulation is assigned to VCF samples when no strata is given
	UnknownPopulation = "NA"
)

// ReadVCF converts a VCF into a tidy table with one row per (variant, sample).
// MARKERS is the variant ID, or CHROM:POS when the ID is missing. Both GT_VCF
// and the six-character GT are filled from the allele indices. When strata is
// non-nil, it provides POP_ID and restricts the samples that are kept.
func ReadVCF(r io.Reader, strata map[string]string) (*Table, error) {
	rdr, err := vcfgo.NewReader(bufio.NewReaderSize(r, BufferSize), true)
	if err != nil {
		if rdr == nil {
			return nil, pfx.Err(err)
		}
		log.Println("Invalid VCF header features, attempting to continue:", err)
		rdr.Clear()
	}

	t, err := NewTable(ColMarkers, ColChrom, ColLocus, ColPos, ColIndividuals, ColPopID, ColGT, ColGTVCF)
	if err != nil {
		return nil, err
	}

	samples := rdr.Header.SampleNames
	if len(samples) == 0 {
		return nil, fmt.Errorf("VCF has no samples: %w", ErrMissingInput)
	}

	for {
		variant := rdr.Read()
		if variant == nil {
			break
		}
		if err := variant.Header.ParseSamples(variant); err != nil {
			return nil, pfx.Err(fmt.Errorf("%s:%d: %w", variant.Chromosome, variant.Pos, err))
		}

		locus := variant.Id()
		marker := locus
		if locus == "" || locus == "." {
			locus = ""
			marker = fmt.Sprintf("%s:%d", variant.Chromosome, variant.Pos)
		}
		pos := strconv.FormatUint(variant.Pos, 10)

		for i, sample := range variant.Samples {
			if i >= len(samples) {
				break
			}
			pop := UnknownPopulation
			if strata != nil {
				var exists bool
				if pop, exists = strata[samples[i]]; !exists {
					continue
				}
			}

			a1, a2, phased := sampleAlleles(sample)
			t.Rows = append(t.Rows, Record{
				Markers:     marker,
				Chrom:       variant.Chromosome,
				Locus:       locus,
				Pos:         pos,
				Individuals: samples[i],
				PopID:       pop,
				GT:          JoinGT(a1, a2),
				GTVCF:       formatGTVCF(a1, a2, phased),
			})
		}
	}

	if err := rdr.Error(); err != nil {
		log.Println("VCF parsing reported problems:", err)
	}

	return t, nil
}

// sampleAlleles returns the two allele indices of a diploid call, with -1 for
// missing.
func sampleAlleles(sample *vcfgo.SampleGenotype) (int, int, bool) {
	if sample == nil || len(sample.GT) < 2 {
		return -1, -1, false
	}

	return sample.GT[0], sample.GT[1], sample.Phased
}

func formatGTVCF(a1, a2 int, phased bool) string {
	if a1 < 0 || a2 < 0 {
		return MissingGTVCF
	}
	sep := "/"
	if phased {
		sep = "|"
	}
	return strconv.Itoa(a1) + sep + strconv.Itoa(a2)
}
