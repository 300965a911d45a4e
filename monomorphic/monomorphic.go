// Package monomorphic removes markers at which every observed allele is the
// same.
package monomorphic

import (
	"log"
	"sort"

	"github.com/carbocation/radtidy/tidy"
)

// Result holds the output of Filter.
type Result struct {
	// Filtered is the input table without the monomorphic markers. It has the
	// same schema as the input.
	Filtered *tidy.Table

	// Removed lists the monomorphic markers, sorted. It is never nil.
	Removed []tidy.MarkerInfo

	// Whitelist lists the markers that remain, sorted.
	Whitelist []tidy.MarkerInfo

	// WithCoordinates is true when CHROM, LOCUS and POS were available and
	// Removed and Whitelist carry them.
	WithCoordinates bool
}

// Filter discards monomorphic markers: markers whose non-missing genotypes
// contain exactly one distinct allele. Markers without any non-missing
// genotype are kept. The input table is not modified.
func Filter(t *tidy.Table, verbose bool) (*Result, error) {
	if err := t.Require(tidy.ColMarkers, tidy.ColGT); err != nil {
		return nil, err
	}

	res := &Result{
		WithCoordinates: t.Has(tidy.ColChrom),
	}

	// Snapshot coordinates before anything is dropped, so that the removed
	// markers can be reported with them
	var meta map[string]tidy.MarkerInfo
	if res.WithCoordinates {
		infos, err := tidy.MarkerMetadata(t)
		if err != nil {
			return nil, err
		}
		meta = make(map[string]tidy.MarkerInfo, len(infos))
		for _, info := range infos {
			meta[info.Markers] = info
		}
	}

	monomorphic, err := Classify(t)
	if err != nil {
		return nil, err
	}

	res.Filtered = t.Subset(func(rec tidy.Record) bool {
		_, drop := monomorphic[rec.Markers]
		return !drop
	})

	res.Removed = make([]tidy.MarkerInfo, 0, len(monomorphic))
	for marker := range monomorphic {
		res.Removed = append(res.Removed, markerInfo(marker, meta))
	}
	sort.Slice(res.Removed, func(i, j int) bool { return res.Removed[i].Markers < res.Removed[j].Markers })

	kept := res.Filtered.Markers()
	res.Whitelist = make([]tidy.MarkerInfo, 0, len(kept))
	for _, marker := range kept {
		res.Whitelist = append(res.Whitelist, markerInfo(marker, meta))
	}

	if verbose {
		before := len(res.Removed) + len(res.Whitelist)
		log.Printf("Filtering monomorphic markers\n")
		log.Printf("Number of markers before = %d\n", before)
		log.Printf("Number of monomorphic markers removed = %d\n", len(res.Removed))
		log.Printf("Number of markers after = %d\n", len(res.Whitelist))
	}

	return res, nil
}

// Classify returns the set of monomorphic markers in t. Missing genotypes
// (tidy.MissingGT) are ignored.
func Classify(t *tidy.Table) (map[string]struct{}, error) {
	if err := t.Require(tidy.ColMarkers, tidy.ColGT); err != nil {
		return nil, err
	}

	alleles := make(map[string]map[string]struct{})
	for _, rec := range t.Rows {
		if rec.GT == tidy.MissingGT {
			continue
		}

		a1, a2, err := tidy.SplitGT(rec.GT)
		if err != nil {
			return nil, err
		}

		set, exists := alleles[rec.Markers]
		if !exists {
			set = make(map[string]struct{}, 2)
			alleles[rec.Markers] = set
		}
		set[a1] = struct{}{}
		set[a2] = struct{}{}
	}

	out := make(map[string]struct{})
	for marker, set := range alleles {
		if len(set) == 1 {
			out[marker] = struct{}{}
		}
	}

	return out, nil
}

func markerInfo(marker string, meta map[string]tidy.MarkerInfo) tidy.MarkerInfo {
	if info, exists := meta[marker]; exists {
		return info
	}
	return tidy.MarkerInfo{Markers: marker}
}
