package tidy

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
)

// MarkerInfo holds the physical-map coordinates of a marker.
type MarkerInfo struct {
	Markers string `csv:"MARKERS"`
	Chrom   string `csv:"CHROM"`
	Locus   string `csv:"LOCUS"`
	Pos     string `csv:"POS"`
}

// MarkerMetadata returns one entry per marker, sorted by marker identifier.
// Every record of a marker must carry the same CHROM, LOCUS and POS; any
// disagreement is reported rather than resolved.
func MarkerMetadata(t *Table) ([]MarkerInfo, error) {
	if err := t.Require(ColMarkers); err != nil {
		return nil, err
	}

	byMarker := make(map[string]MarkerInfo)
	for _, rec := range t.Rows {
		info := MarkerInfo{
			Markers: rec.Markers,
			Chrom:   rec.Chrom,
			Locus:   rec.Locus,
			Pos:     rec.Pos,
		}
		prior, exists := byMarker[rec.Markers]
		if !exists {
			byMarker[rec.Markers] = info
			continue
		}
		if prior != info {
			return nil, fmt.Errorf("marker %s maps to more than one position (%s:%s:%s and %s:%s:%s): %w",
				rec.Markers, prior.Chrom, prior.Locus, prior.Pos, info.Chrom, info.Locus, info.Pos, ErrInvalidGenotypeEncoding)
		}
	}

	out := make([]MarkerInfo, 0, len(byMarker))
	for _, info := range byMarker {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Markers < out[j].Markers })

	return out, nil
}

// WriteMarkers writes a marker list with a header. When withCoordinates is
// false only the MARKERS column is written.
func WriteMarkers(w io.Writer, markers []MarkerInfo, withCoordinates bool, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	header := []string{ColMarkers}
	if withCoordinates {
		header = append(header, ColChrom, ColLocus, ColPos)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, m := range markers {
		row := []string{m.Markers}
		if withCoordinates {
			row = append(row, m.Chrom, m.Locus, m.Pos)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
