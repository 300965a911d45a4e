package radtidy

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a tidy genotype table. Tidy tables are
// tab-delimited far more often than not, so a tab is returned when nothing can
// be detected.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}
